package database

import (
	"clinicsync-service/internal/app/config"
	"clinicsync-service/internal/pkg/utils"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := utils.RetryWithBackoff(ctx, utils.DefaultRetryAttempts, time.Second, func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	return rdb
}
