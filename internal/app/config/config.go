package config

import (
	"cfs-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:                 utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:                 utils.GetEnvString("REDIS_PORT", "6379"),
			Password:             utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:                   utils.GetEnvInt("REDIS_DB", 0),
			DialTimeoutInSeconds: utils.GetEnvInt("REDIS_DIAL_TIMEOUT_IN_SECONDS", 5),
			PoolSize:             utils.GetEnvInt("REDIS_POOL_SIZE", 0),
		},
		MongoDB: MongoDB{
			Host:                    utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:                    utils.GetEnvString("MONGODB_PORT", "27017"),
			Username:                utils.GetEnvString("MONGODB_USERNAME", ""),
			Password:                utils.GetEnvString("MONGODB_PASSWORD", ""),
			DBName:                  utils.GetEnvString("MONGODB_DB_NAME", "cfs"),
			AuthSource:              utils.GetEnvString("MONGODB_AUTH_SOURCE", "admin"),
			ConnectTimeoutInSeconds: utils.GetEnvInt("MONGODB_CONNECT_TIMEOUT_IN_SECONDS", 10),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:    utils.GetEnvString("RABBITMQ_VHOST", "/"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			Region:   utils.GetEnvString("MINIO_REGION", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "cfs.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "cfs_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvCSV("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 120),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			AdminAPIKey:                utils.GetEnvString("APP_ADMIN_API_KEY", ""),
			StoreDriver:                utils.GetEnvString("APP_STORE_DRIVER", StoreDriverRedis),
			EventsEnabled:              utils.GetEnvBool("APP_EVENTS_ENABLED", false),
			ExportEnabled:              utils.GetEnvBool("APP_EXPORT_OBJECT_STORAGE_ENABLED", false),
		},
		Session: AppSession{
			JWTSecret:                utils.GetEnvString("SESSION_JWT_SECRET", "change-me"),
			ExpiredTimeInMinutes:     utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_MINUTES", 120),
			LockExpiredTimeInSeconds: utils.GetEnvInt("SESSION_LOCK_EXPIRED_TIME_IN_SECONDS", 10),
		},
		Export: AppExport{
			BucketName:                          utils.GetEnvString("EXPORT_BUCKET_NAME", "cfs-exports"),
			ObjectPrefix:                        utils.GetEnvString("EXPORT_OBJECT_PREFIX", "exports"),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("EXPORT_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 24),
			SnapshotCronSpec:                    utils.GetEnvString("EXPORT_SNAPSHOT_CRON_SPEC", ""),
			DownloadsPerMinute:                  utils.GetEnvInt("EXPORT_DOWNLOADS_PER_MINUTE", 6),
			DownloadBurst:                       utils.GetEnvInt("EXPORT_DOWNLOAD_BURST", 2),
			BlockTimeInSeconds:                  utils.GetEnvInt("EXPORT_BLOCK_TIME_IN_SECONDS", 60),
			PublishQuotaPerHour:                 utils.GetEnvInt("EXPORT_PUBLISH_QUOTA_PER_HOUR", 12),
		},
		MongoDB: AppMongoDB{
			AssessmentCollection: utils.GetEnvString("MONGODB_ASSESSMENT_COLLECTION", "assessments"),
			CounterCollection:    utils.GetEnvString("MONGODB_COUNTER_COLLECTION", "counters"),
		},
		RabbitMQ: AppRabbitMQ{
			AssessmentEventQueue:    utils.GetEnvString("RABBITMQ_ASSESSMENT_EVENT_QUEUE", "cfs_assessment_events"),
			PublishTimeoutInSeconds: utils.GetEnvInt("RABBITMQ_PUBLISH_TIMEOUT_IN_SECONDS", 5),
		},
	}
}
