package models

import (
	"cfs-service/internal/pkg/cfs"
	"time"
)

// Assessment is a persisted, scored questionnaire. Responses hold the
// default-filled answers plus any post-score checklist answers.
type Assessment struct {
	ID           int64             `json:"id" bson:"_id"`
	Responses    cfs.Answers       `json:"responses" bson:"responses"`
	BasicDetails map[string]string `json:"basicDetails" bson:"basicDetails"`
	Score        int               `json:"score" bson:"score"`
	LevelTitle   string            `json:"levelTitle" bson:"levelTitle"`
	Timestamp    time.Time         `json:"timestamp" bson:"timestamp"`
	UpdatedAt    *time.Time        `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

func (a *Assessment) Detail(key string) string {
	if a.BasicDetails == nil {
		return ""
	}
	return a.BasicDetails[key]
}

func (a *Assessment) ApplyResult(result cfs.ScoreResult) {
	a.Score = result.Level
	a.LevelTitle = result.Title
}

type ScoreMismatch struct {
	AssessmentID  int64 `json:"assessment_id"`
	StoredScore   int   `json:"stored_score"`
	ComputedScore int   `json:"computed_score"`
}

// DroppedResponses lists the response keys of an imported record that are
// not questionnaire fields and were left out.
type DroppedResponses struct {
	AssessmentID int64    `json:"assessment_id"`
	LegacyID     string   `json:"legacy_id,omitempty"`
	Keys         []string `json:"keys"`
}

type ImportResult struct {
	Imported   int                `json:"imported"`
	Skipped    int                `json:"skipped"`
	Rescored   int                `json:"rescored"`
	Mismatches []ScoreMismatch    `json:"mismatches,omitempty"`
	Dropped    []DroppedResponses `json:"dropped,omitempty"`
}
