package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/healthcare-blog/internal/domain"
)

// PostCache is a read-through cache for post-by-id lookups.
type PostCache interface {
	Get(ctx context.Context, id string) (*domain.Post, bool)
	Set(ctx context.Context, post *domain.Post)
	Invalidate(ctx context.Context, id string)
}

type redisPostCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisPostCache builds a Redis-backed post cache. Cache failures are
// logged at debug level and treated as misses so Postgres stays the
// source of truth.
func NewRedisPostCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) PostCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisPostCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(id string) string {
	return "post:" + id
}

func (c *redisPostCache) Get(ctx context.Context, id string) (*domain.Post, bool) {
	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("post cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var post domain.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		c.logger.Debug("post cache entry corrupt", zap.String("id", id), zap.Error(err))
		_ = c.client.Del(ctx, cacheKey(id)).Err()
		return nil, false
	}
	return &post, true
}

func (c *redisPostCache) Set(ctx context.Context, post *domain.Post) {
	raw, err := json.Marshal(post)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(post.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("post cache set failed", zap.Error(err))
	}
}

func (c *redisPostCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.logger.Debug("post cache invalidate failed", zap.Error(err))
	}
}
