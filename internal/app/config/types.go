package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App        App
		Portal     AppPortal
		Credential AppCredential
		Wizard     AppWizard
		Capture    AppCapture
		Minio      AppMinio
		RabbitMQ   AppRabbitMQ
		MongoDB    AppMongoDB
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		CorsAllowedOrigins         string
		MaxRequests                int
		ShutdownTimeoutInSeconds   int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	AppPortal struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
	}

	// AppCredential locates the keys written by the portal login flow.
	AppCredential struct {
		KeyPrefix string
	}

	AppWizard struct {
		SessionIdleTimeoutInMinutes int
		SweepIntervalInSeconds      int
		MaxSessions                 int
	}

	AppCapture struct {
		Width       int
		Height      int
		JPEGQuality int
		MaxPixels   int
		FacingMode  string
		DeviceDir   string
	}

	AppMinio struct {
		Enabled    bool
		BucketName string
	}

	AppRabbitMQ struct {
		Enabled         bool
		AssessmentQueue string
	}

	AppMongoDB struct {
		Enabled bool
		DBName  string
	}
)
