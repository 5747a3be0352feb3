package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/noto-space/noto-web/config"
	"github.com/noto-space/noto-web/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		client = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// Enabled reports whether a Redis connection is available. The image
// cache is strictly optional: everything works without it, just without
// cross-request reuse of composed images.
func Enabled() bool {
	return client != nil
}

// imageKey namespaces cached composed images by kind, identifier and
// layout variant, since each combination is a distinct asset.
func imageKey(kind, identifier, variant string) string {
	return fmt.Sprintf("og:%s:%s:%s", kind, identifier, variant)
}

// GetCachedImage returns a previously composed image, or found=false on
// miss. Errors are logged and treated as misses so a flaky cache never
// breaks image serving.
func GetCachedImage(ctx context.Context, kind, identifier, variant string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}

	data, err := client.Get(ctx, imageKey(kind, identifier, variant)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("Failed to read composed image from cache", map[string]interface{}{
			"kind":       kind,
			"identifier": identifier,
			"error":      err.Error(),
		})
		return nil, false
	}

	return data, true
}

// CacheImage stores a composed image with the given TTL. The TTL should
// match the Cache-Control max-age sent to clients.
func CacheImage(ctx context.Context, kind, identifier, variant string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}

	if err := client.Set(ctx, imageKey(kind, identifier, variant), data, ttl).Err(); err != nil {
		logger.Warn("Failed to cache composed image", map[string]interface{}{
			"kind":       kind,
			"identifier": identifier,
			"error":      err.Error(),
		})
	}
}
