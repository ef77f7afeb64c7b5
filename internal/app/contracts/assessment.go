package contracts

import (
	"cfs-service/internal/app/models"
	"cfs-service/internal/pkg/dto/requests"
	"context"
)

type AssessmentUsecase interface {
	List(ctx context.Context, pagination *requests.Pagination) ([]models.Assessment, int, error)
	Get(ctx context.Context, assessmentID int64) (*models.Assessment, error)
	Create(ctx context.Context, request *requests.SubmitAssessment) (*models.Assessment, error)
	Update(ctx context.Context, assessmentID int64, request *requests.SubmitAssessment) (*models.Assessment, error)
	Delete(ctx context.Context, assessmentID int64) error
	Import(ctx context.Context, raw []byte) (*models.ImportResult, error)
}

// AssessmentRepository stores scored assessments. Listing is newest first
// by Timestamp. Create assigns the next ID.
type AssessmentRepository interface {
	FindAll(ctx context.Context) ([]models.Assessment, error)
	FindPage(ctx context.Context, offset, limit int) ([]models.Assessment, int, error)
	FindByID(ctx context.Context, assessmentID int64) (*models.Assessment, error)
	Create(ctx context.Context, assessment *models.Assessment) error
	Update(ctx context.Context, assessment *models.Assessment) error
	Delete(ctx context.Context, assessmentID int64) error
}
