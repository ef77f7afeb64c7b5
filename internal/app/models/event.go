package models

import "time"

type Event struct {
	Type         string    `json:"type"`
	AssessmentID int64     `json:"assessment_id,omitempty"`
	Score        int       `json:"score,omitempty"`
	LevelTitle   string    `json:"level_title,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
	ObjectName   string    `json:"object_name,omitempty"`
}

func NewAssessmentEvent(eventType string, assessment *Assessment, now time.Time) Event {
	return Event{
		Type:         eventType,
		AssessmentID: assessment.ID,
		Score:        assessment.Score,
		LevelTitle:   assessment.LevelTitle,
		OccurredAt:   now,
	}
}
