package cache

import (
	"io"

	"library/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a Redis backed cacher when cfg.RedisUrl is set and an in-memory one otherwise.
// The returned closer releases the Redis connection.
func New(cfg config.Config) (RequestCacher, io.Closer, error) {
	if cfg.RedisUrl == "" {
		return CreateMemoryCache(cfg.ActivitySize), nopCloser{}, nil
	}

	redisClient, err := config.SetupRedis(cfg.RedisUrl)
	if err != nil {
		return nil, nil, err
	}

	return CreateRedisCache(cfg.ActivitySize, redisClient), redisClient, nil
}
