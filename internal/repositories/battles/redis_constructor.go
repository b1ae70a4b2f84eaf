package battles

import "github.com/redis/go-redis/v9"

// NewRedis creates a Redis-backed history store with the default retention
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
		Limit:  DefaultHistoryLimit,
	})
}
