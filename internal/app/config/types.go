package config

type (
	DriverConfig struct {
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App   App
		Auth  Auth
		JWT   JWT
		Cache Cache
		Queue Queue
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		MaxTimeRequestsPerSeconds int
	}

	Auth struct {
		ClientID                string
		ClientSecretHash        string
		InternalAPIKey          string
		InternalAPIKeyRateLimit int
		TokenRateLimit          int
		TokenBlockTimeInMinutes int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Cache struct {
		ResultTTLInSeconds int
	}

	Queue struct {
		Prefetch             int
		MaxRetry             int
		ConsumeRatePerSecond int
	}
)
