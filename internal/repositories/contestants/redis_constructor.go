package contestants

import (
	"github.com/KirkDiggler/kokoro-battle/internal/clock"
	"github.com/KirkDiggler/kokoro-battle/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a new Redis-backed contestant repository with default configuration
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		TimeProvider:  clock.System(),
	})
}
