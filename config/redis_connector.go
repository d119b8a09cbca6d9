package config

import (
	"fmt"

	"gopkg.in/redis.v5"
)

func SetupRedis(redisUrl string) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: redisUrl,
	})

	if err := redisClient.Ping().Err(); err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("connect redis %s: %w", redisUrl, err)
	}

	return redisClient, nil
}
