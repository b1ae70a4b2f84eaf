package battles

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"
	"github.com/redis/go-redis/v9"
)

const contestantBattlesKey = "contestant:%s:battles"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	Limit  int
}

type redisRepo struct {
	client redis.UniversalClient
	limit  int
}

// NewRedisRepository creates a Redis-backed history store.
// Each contestant's history is a capped list of JSON records, newest at the head.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	return &redisRepo{
		client: cfg.Client,
		limit:  limit,
	}
}

func historyKey(contestantID string) string {
	return fmt.Sprintf(contestantBattlesKey, contestantID)
}

func (r *redisRepo) Record(ctx context.Context, record *combat.Record) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal battle record")
	}

	pipe := r.client.Pipeline()
	for _, id := range participants(record) {
		key := historyKey(id)
		pipe.LPush(ctx, key, string(data))
		pipe.LTrim(ctx, key, 0, int64(r.limit-1))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to record battle %s", record.ID)
	}

	return nil
}

func (r *redisRepo) ListByContestant(ctx context.Context, contestantID string, limit int) ([]*combat.Record, error) {
	if limit <= 0 || limit > r.limit {
		limit = r.limit
	}

	values, err := r.client.LRange(ctx, historyKey(contestantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get battle history for %s", contestantID)
	}

	records := make([]*combat.Record, 0, len(values))
	for _, value := range values {
		var rec combat.Record
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			log.Printf("Skipping unreadable battle record for %s: %v", contestantID, err)
			continue
		}
		records = append(records, &rec)
	}

	return records, nil
}
