package contracts

import (
	"cfs-service/internal/app/models"
	"context"
)

type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
	Close() error
}
