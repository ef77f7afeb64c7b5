package contracts

import (
	"cfs-service/internal/app/models"
	"context"
	"io"
	"time"
)

type ExportUsecase interface {
	FileName(now time.Time) string
	WriteCSV(ctx context.Context, w io.Writer) (int, error)
	Publish(ctx context.Context) (*models.ExportObject, error)
}
