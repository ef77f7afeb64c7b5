package contracts

import (
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/dto/requests"
	"cfs-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type SessionUsecase interface {
	Start(ctx context.Context, request *requests.StartSession) (*responses.Session, error)
	StartEdit(ctx context.Context, assessmentID int64) (*responses.Session, error)
	Get(ctx context.Context, sessionID string) (*responses.Session, error)
	SetAnswer(ctx context.Context, sessionID string, request *requests.SetAnswer) (*responses.Session, error)
	ClearAnswer(ctx context.Context, sessionID, field string) (*responses.Session, error)
	UpdateBasicDetails(ctx context.Context, sessionID string, request *requests.UpdateBasicDetails) (*responses.Session, error)
	Calculate(ctx context.Context, sessionID string) (*responses.Session, error)
	Save(ctx context.Context, sessionID string, request *requests.SaveSession) (*responses.SavedSession, error)
	Discard(ctx context.Context, sessionID string) error
}

type SessionStore interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
