package storage

import (
	"cfs-service/internal/app/config"
	"net"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// NewMinio builds the object storage client used for published exports.
// It does not dial; the bucket is checked on the first publish.
func NewMinio(driverConfig *config.DriverConfig, log *zap.Logger) *minio.Client {
	minioConfig := driverConfig.Minio
	endpoint := net.JoinHostPort(minioConfig.Host, minioConfig.Port)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioConfig.Username, minioConfig.Password, ""),
		Secure: minioConfig.UseSSL,
		Region: minioConfig.Region,
	})
	if err != nil {
		log.Fatal("Failed to initialize Minio Client", zap.String("endpoint", endpoint), zap.Error(err))
	}

	log.Info("Successfully initialized minio client",
		zap.String("endpoint", endpoint),
		zap.Bool("secure", minioConfig.UseSSL),
	)
	return client
}
