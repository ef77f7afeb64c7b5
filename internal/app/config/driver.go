package config

// DriverConfig holds connection settings for the backing services. Only
// Redis is always dialed; the others are dialed when the feature that
// needs them is enabled in InternalConfig.
type (
	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}
	Redis struct {
		Host                 string
		Port                 string
		Password             string
		DB                   int
		DialTimeoutInSeconds int
		PoolSize             int
	}
	// MongoDB backs the record store when App.StoreDriver is "mongo".
	MongoDB struct {
		Host                    string
		Port                    string
		Username                string
		Password                string
		DBName                  string
		AuthSource              string
		ConnectTimeoutInSeconds int
	}
	// RabbitMQ carries assessment events when App.EventsEnabled is set.
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
		VHost    string
	}
	// Minio holds published exports when App.ExportEnabled is set.
	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		Region   string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
