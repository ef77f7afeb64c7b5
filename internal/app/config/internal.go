package config

const (
	StoreDriverRedis = "redis"
	StoreDriverMongo = "mongo"
)

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Session  AppSession  `mapstructure:"session"`
	Export   AppExport   `mapstructure:"export"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env            string   `mapstructure:"env"`
	Port           string   `mapstructure:"port"`
	Version        string   `mapstructure:"version"`
	Timezone       string   `mapstructure:"timezone"`
	EndpointPrefix string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// MaxRequests is the per-IP limit per second; 0 turns limiting off.
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	AdminAPIKey                string `mapstructure:"admin_api_key"`
	// StoreDriver selects the assessment record store: "redis" or "mongo".
	StoreDriver   string `mapstructure:"store_driver"`
	EventsEnabled bool   `mapstructure:"events_enabled"`
	// ExportEnabled turns on object storage uploads and the snapshot worker.
	ExportEnabled bool `mapstructure:"export_enabled"`
}

type AppSession struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	ExpiredTimeInMinutes     int    `mapstructure:"expired_time_in_minutes"`
	LockExpiredTimeInSeconds int    `mapstructure:"lock_expired_time_in_seconds"`
}

type AppExport struct {
	BucketName                          string `mapstructure:"bucket_name"`
	ObjectPrefix                        string `mapstructure:"object_prefix"`
	PreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
	// SnapshotCronSpec schedules periodic uploads, e.g. "@daily". Empty disables them.
	SnapshotCronSpec   string `mapstructure:"snapshot_cron_spec"`
	DownloadsPerMinute int    `mapstructure:"downloads_per_minute"`
	DownloadBurst      int    `mapstructure:"download_burst"`
	BlockTimeInSeconds int    `mapstructure:"block_time_in_seconds"`
	// PublishQuotaPerHour caps uploads across all instances. Zero disables the cap.
	PublishQuotaPerHour int `mapstructure:"publish_quota_per_hour"`
}

type AppMongoDB struct {
	AssessmentCollection string `mapstructure:"assessment_collection"`
	CounterCollection    string `mapstructure:"counter_collection"`
}

type AppRabbitMQ struct {
	AssessmentEventQueue    string `mapstructure:"assessment_event_queue"`
	PublishTimeoutInSeconds int    `mapstructure:"publish_timeout_in_seconds"`
}
