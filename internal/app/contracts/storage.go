package contracts

import (
	"context"
	"io"
	"time"
)

// ExportStorage keeps published CSV exports and hands out time-limited
// download links for them.
type ExportStorage interface {
	// EnsureBucket creates bucketName when it does not exist yet.
	EnsureBucket(ctx context.Context, bucketName string) error
	// PutObject uploads size bytes from reader and returns the stored size.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (int64, error)
	// PresignedURL returns a GET link that downloads objectName as an
	// attachment until expiry elapses.
	PresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
}
