package config

import (
	"clinicsync-service/internal/pkg/utils"

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
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Address:         utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		ClinicBackend: ClinicBackend{
			BaseUrl:               utils.GetEnvString("CLINIC_BACKEND_BASE_URL", "http://localhost:3000"),
			ServiceToken:          utils.GetEnvString("CLINIC_BACKEND_SERVICE_TOKEN", ""),
			RequestTimeoutSeconds: utils.GetEnvInt("CLINIC_BACKEND_REQUEST_TIMEOUT_SECONDS", 10),
			RateLimitPerSecond:    utils.GetEnvInt("CLINIC_BACKEND_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:        utils.GetEnvInt("CLINIC_BACKEND_RATE_LIMIT_BURST", 40),
			RetryAttempts:         utils.GetEnvInt("CLINIC_BACKEND_RETRY_ATTEMPTS", 3),
			RetryBaseDelayMs:      utils.GetEnvInt("CLINIC_BACKEND_RETRY_BASE_DELAY_MS", 500),
		},
		Sync: Sync{
			CacheBackend:         utils.GetEnvString("SYNC_CACHE_BACKEND", "memory"),
			CacheLifetimeSeconds: utils.GetEnvInt("SYNC_CACHE_LIFETIME_SECONDS", 180),
			DebounceQuietMs:      utils.GetEnvInt("SYNC_DEBOUNCE_QUIET_MS", 500),
			DebounceMinLength:    utils.GetEnvInt("SYNC_DEBOUNCE_MIN_LENGTH", 1),
			MaxPageSize:          utils.GetEnvInt("SYNC_MAX_PAGE_SIZE", 100),
		},
	}
}
