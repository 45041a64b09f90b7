package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/EhsanSamy/Medical-Appointment-No-show-Analysis/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss is returned by DashboardCache.Get when nothing is stored for a key.
var ErrCacheMiss = errors.New("dashboard cache miss")

const (
	// Redis key prefix for rendered dashboard states
	RedisDashboardKeyPrefix = "dashboard:state:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// DashboardCache stores encoded dashboard states per dataset and filter selection.
// Entries are pure functions of their key, so a stale read can only happen when
// the dataset changes, which changes the fingerprint part of the key.
type DashboardCache interface {
	Get(ctx context.Context, fingerprint string, sel entity.FilterSelection) ([]byte, error)
	Set(ctx context.Context, fingerprint string, sel entity.FilterSelection, payload []byte) error
}

// DashboardCacheKey builds the Redis key for a dataset fingerprint and selection.
func DashboardCacheKey(fingerprint string, sel entity.FilterSelection) string {
	q := url.Values{}
	q.Set("day", sel.DayOfWeek)
	q.Set("neighbourhood", sel.Neighbourhood)
	q.Set("age_group", sel.AgeGroup)
	q.Set("gap_group", sel.GapGroup)
	return fmt.Sprintf("%s%s:%s", RedisDashboardKeyPrefix, fingerprint, q.Encode())
}

type redisDashboardCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisDashboardCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) DashboardCache {
	return &redisDashboardCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *redisDashboardCache) Get(ctx context.Context, fingerprint string, sel entity.FilterSelection) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	key := DashboardCacheKey(fingerprint, sel)
	payload, err := c.redisClient.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		c.log.Warnf("Failed to read dashboard cache %s: %+v", key, err)
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	c.log.Debugf("Dashboard cache hit: %s", key)
	return payload, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, fingerprint string, sel entity.FilterSelection, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	key := DashboardCacheKey(fingerprint, sel)
	if err := c.redisClient.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write dashboard cache %s: %+v", key, err)
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// noopDashboardCache is used when Redis is not configured.
type noopDashboardCache struct{}

func NewNoopDashboardCache() DashboardCache {
	return noopDashboardCache{}
}

func (noopDashboardCache) Get(context.Context, string, entity.FilterSelection) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (noopDashboardCache) Set(context.Context, string, entity.FilterSelection, []byte) error {
	return nil
}
