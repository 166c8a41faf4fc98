package config

import (
	"availability-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
		},
		Auth: Auth{
			ClientID:                utils.GetEnvString("AUTH_CLIENT_ID", "availability-client"),
			ClientSecretHash:        utils.GetEnvString("AUTH_CLIENT_SECRET_HASH", ""),
			InternalAPIKey:          utils.GetEnvString("AUTH_INTERNAL_API_KEY", ""),
			InternalAPIKeyRateLimit: utils.GetEnvInt("AUTH_INTERNAL_API_KEY_RATE_LIMIT", 100),
			TokenRateLimit:          utils.GetEnvInt("AUTH_TOKEN_RATE_LIMIT", 5),
			TokenBlockTimeInMinutes: utils.GetEnvInt("AUTH_TOKEN_BLOCK_TIME_IN_MINUTES", 5),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Cache: Cache{
			ResultTTLInSeconds: utils.GetEnvInt("CACHE_RESULT_TTL_IN_SECONDS", 60),
		},
		Queue: Queue{
			Prefetch:             utils.GetEnvInt("QUEUE_PREFETCH", 10),
			MaxRetry:             utils.GetEnvInt("QUEUE_MAX_RETRY", 3),
			ConsumeRatePerSecond: utils.GetEnvInt("QUEUE_CONSUME_RATE_PER_SECOND", 20),
		},
	}
}
