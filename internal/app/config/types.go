package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App           App
		ClinicBackend ClinicBackend
		Sync          Sync
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Address         string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	ClinicBackend struct {
		BaseUrl               string
		ServiceToken          string
		RequestTimeoutSeconds int
		RateLimitPerSecond    int
		RateLimitBurst        int
		RetryAttempts         int
		RetryBaseDelayMs      int
	}

	Sync struct {
		CacheBackend         string
		CacheLifetimeSeconds int
		DebounceQuietMs      int
		DebounceMinLength    int
		MaxPageSize          int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
