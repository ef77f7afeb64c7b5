package storage

import (
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client *minio.Client
	region string
}

// NewMinioStorage stores exports in Minio. Buckets are created in region
// when it is set.
func NewMinioStorage(client *minio.Client, region string) contracts.ExportStorage {
	return &minioStorage{client: client, region: region}
}

func (m *minioStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioEnsureBucket(err, bucketName)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.region}); err != nil {
		// Another instance may have created it in between.
		if exists, existsErr := m.client.BucketExists(ctx, bucketName); existsErr == nil && exists {
			return nil
		}
		return exceptions.ErrMinioEnsureBucket(err, bucketName)
	}
	return nil
}

func (m *minioStorage) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (int64, error) {
	info, err := m.client.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType:        contentType,
		ContentDisposition: attachment(objectName),
	})
	if err != nil {
		return 0, exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return info.Size, nil
}

func (m *minioStorage) PresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", attachment(objectName))

	signed, err := m.client.PresignedGetObject(ctx, bucketName, objectName, expiry, params)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, bucketName)
	}
	return signed.String(), nil
}

func attachment(objectName string) string {
	return fmt.Sprintf("attachment; filename=%q", path.Base(objectName))
}
