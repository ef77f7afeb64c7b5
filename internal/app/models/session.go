package models

import (
	"cfs-service/internal/pkg/cfs"
	"time"
)

type SessionMode string

const (
	SessionModeNew  SessionMode = "new"
	SessionModeEdit SessionMode = "edit"
)

type SessionState string

const (
	SessionStateEmpty             SessionState = "empty"
	SessionStatePartiallyAnswered SessionState = "partially_answered"
	SessionStateComplete          SessionState = "complete"
	SessionStateScored            SessionState = "scored"
	SessionStatePersisted         SessionState = "persisted"
)

// Session is one in-progress answer set. AssessmentID and Timestamp are
// only set in edit mode, where they come from the record being edited.
type Session struct {
	ID            string            `json:"id"`
	Mode          SessionMode       `json:"mode"`
	AssessmentID  int64             `json:"assessmentId,omitempty"`
	State         SessionState      `json:"state"`
	BasicDetails  map[string]string `json:"basicDetails"`
	Responses     cfs.Answers       `json:"responses"`
	Result        *cfs.ScoreResult  `json:"result,omitempty"`
	Timestamp     *time.Time        `json:"timestamp,omitempty"`
	EditLockValue string            `json:"editLockValue,omitempty"`
	TimeModel
}

// RecomputeState derives the state from the answers and result. A
// persisted session keeps its state.
func (s *Session) RecomputeState() {
	switch {
	case s.State == SessionStatePersisted:
	case s.Result != nil:
		s.State = SessionStateScored
	case len(s.Responses) == 0:
		s.State = SessionStateEmpty
	case cfs.IsComplete(s.Responses):
		s.State = SessionStateComplete
	default:
		s.State = SessionStatePartiallyAnswered
	}
}

func (s *Session) IsEdit() bool {
	return s.Mode == SessionModeEdit
}
