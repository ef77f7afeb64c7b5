package responses

import (
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/cfs"
)

type Session struct {
	Session          *models.Session `json:"session"`
	Token            string          `json:"token,omitempty"`
	Progress         Visibility      `json:"progress"`
	ChecklistOffered bool            `json:"checklist_offered"`
	ChecklistFields  []cfs.Field     `json:"checklist_fields,omitempty"`
}

func NewSession(session *models.Session, token string) *Session {
	view := &Session{
		Session:  session,
		Token:    token,
		Progress: NewVisibility(session.Responses),
	}
	if session.Result != nil && cfs.OffersChronicChecklist(session.Result.Level) {
		view.ChecklistOffered = true
		view.ChecklistFields = cfs.ChronicFields
	}
	return view
}

type SavedSession struct {
	Session    *models.Session    `json:"session"`
	Assessment *models.Assessment `json:"assessment"`
}
