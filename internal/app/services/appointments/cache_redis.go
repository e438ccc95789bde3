package appointments

import (
	"clinicsync-service/internal/app/contracts"
	"clinicsync-service/internal/app/models"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const redisCacheKeyPrefix = "clinicsync:consultations:"

type redisCacheEntry struct {
	Page      *models.AppointmentPage `json:"page"`
	FetchedAt time.Time               `json:"fetched_at"`
}

type redisResultCache struct {
	repository contracts.RedisRepository
	lifetime   time.Duration
	log        *zap.Logger
	now        func() time.Time
}

// NewRedisResultCache builds a Redis-backed result cache so cached pages
// survive restarts and are shared across replicas. Redis failures degrade to
// cache misses; they never fail a lookup.
func NewRedisResultCache(repository contracts.RedisRepository, lifetime time.Duration, logger *zap.Logger) contracts.ResultCache {
	if lifetime <= 0 {
		lifetime = DefaultCacheLifetime
	}
	return &redisResultCache{
		repository: repository,
		lifetime:   lifetime,
		log:        logger,
		now:        time.Now,
	}
}

func (c *redisResultCache) Get(ctx context.Context, key string) (*models.AppointmentPage, bool, bool) {
	raw, err := c.repository.Get(ctx, redisCacheKeyPrefix+key)
	if err != nil {
		c.log.Warn("redisResultCache.Get failed, treating as miss", zap.Error(err))
		return nil, false, false
	}
	if raw == "" {
		return nil, false, false
	}

	var entry redisCacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.log.Warn("redisResultCache.Get cannot decode entry, treating as miss", zap.Error(err))
		return nil, false, false
	}

	age := c.now().Sub(entry.FetchedAt)
	return entry.Page, age < c.lifetime, true
}

func (c *redisResultCache) Set(ctx context.Context, key string, page *models.AppointmentPage) {
	entry := redisCacheEntry{Page: page, FetchedAt: c.now()}
	retention := c.lifetime * staleRetentionFactor
	if err := c.repository.Set(ctx, redisCacheKeyPrefix+key, entry, retention); err != nil {
		c.log.Warn("redisResultCache.Set failed", zap.Error(err))
	}
}
