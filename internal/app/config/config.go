package config

import (
	"wellness-wizard/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsAllowedOrigins:         utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 16),
		},
		Portal: AppPortal{
			BaseUrl:                 utils.GetEnvString("PORTAL_BASE_URL", "http://localhost:8000"),
			RequestTimeoutInSeconds: utils.GetEnvInt("PORTAL_REQUEST_TIMEOUT_IN_SECONDS", 30),
		},
		Credential: AppCredential{
			KeyPrefix: utils.GetEnvString("CREDENTIAL_KEY_PREFIX", "portal"),
		},
		Wizard: AppWizard{
			SessionIdleTimeoutInMinutes: utils.GetEnvInt("WIZARD_SESSION_IDLE_TIMEOUT_IN_MINUTES", 30),
			SweepIntervalInSeconds:      utils.GetEnvInt("WIZARD_SWEEP_INTERVAL_IN_SECONDS", 60),
			MaxSessions:                 utils.GetEnvInt("WIZARD_MAX_SESSIONS", 100),
		},
		Capture: AppCapture{
			Width:       utils.GetEnvInt("CAPTURE_WIDTH", 1280),
			Height:      utils.GetEnvInt("CAPTURE_HEIGHT", 720),
			JPEGQuality: utils.GetEnvInt("CAPTURE_JPEG_QUALITY", 80),
			MaxPixels:   utils.GetEnvInt("CAPTURE_MAX_UPLOAD_PIXELS", 0),
			FacingMode:  utils.GetEnvString("CAPTURE_FACING_MODE", "user"),
			DeviceDir:   utils.GetEnvString("CAPTURE_DEVICE_DIR", ""),
		},
		Minio: AppMinio{
			Enabled:    utils.GetEnvBool("APP_MINIO_ENABLED", false),
			BucketName: utils.GetEnvString("APP_MINIO_BUCKET_NAME", "iris-images"),
		},
		RabbitMQ: AppRabbitMQ{
			Enabled:         utils.GetEnvBool("APP_RABBITMQ_ENABLED", false),
			AssessmentQueue: utils.GetEnvString("APP_RABBITMQ_ASSESSMENT_QUEUE", "assessment-events"),
		},
		MongoDB: AppMongoDB{
			Enabled: utils.GetEnvBool("APP_MONGODB_ENABLED", false),
			DBName:  utils.GetEnvString("APP_MONGODB_DB_NAME", "wellness"),
		},
	}
}
