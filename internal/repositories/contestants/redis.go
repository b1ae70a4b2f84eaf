package contestants

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/kokoro-battle/internal/clock"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
	apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"
	"github.com/KirkDiggler/kokoro-battle/internal/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	contestantKeyPrefix = "contestant:"
	ownerContestantsKey = "owner:%s:contestants"
)

// Data is the serialized form of a contestant in Redis
type Data struct {
	Contestant *contestant.Contestant `json:"contestant"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  clock.TimeProvider
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  clock.TimeProvider
}

// NewRedisRepository creates a new Redis-backed contestant repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = clock.System()
	}

	return repo
}

func contestantKey(id string) string {
	return contestantKeyPrefix + id
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf(ownerContestantsKey, ownerID)
}

func (r *redisRepo) Create(ctx context.Context, c *contestant.Contestant) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, contestantKey(c.ID)).Result()
	if err != nil {
		return apperr.Wrap(err, "failed to check contestant existence")
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("contestant with ID %s already exists", c.ID)
	}

	now := r.timeProvider.Now()
	return r.set(ctx, &Data{Contestant: c, CreatedAt: now, UpdatedAt: now}, "")
}

// set writes the record and its owner index; previousOwner is dropped from the index when it differs
func (r *redisRepo) set(ctx context.Context, data *Data, previousOwner string) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal contestant data")
	}

	c := data.Contestant
	pipe := r.client.Pipeline()
	pipe.Set(ctx, contestantKey(c.ID), string(jsonData), 0)
	if previousOwner != "" && previousOwner != c.OwnerID {
		pipe.SRem(ctx, ownerKey(previousOwner), c.ID)
	}
	pipe.SAdd(ctx, ownerKey(c.OwnerID), c.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrap(err, "failed to set contestant in Redis")
	}

	return nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*Data, error) {
	jsonData, err := r.client.Get(ctx, contestantKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("contestant not found: %s", id)
		}
		return nil, apperr.Wrap(err, "failed to get contestant from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, apperr.Wrap(err, "failed to unmarshal contestant data")
	}
	if data.Contestant == nil {
		return nil, apperr.Internalf("contestant %s has no payload", id)
	}

	data.Contestant.Normalize()
	return &data, nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*contestant.Contestant, error) {
	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}
	return data.Contestant, nil
}

func (r *redisRepo) Update(ctx context.Context, c *contestant.Contestant) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		return apperr.InvalidArgument("contestant ID cannot be empty")
	}

	existing, err := r.getData(ctx, c.ID)
	if err != nil {
		return err
	}

	return r.set(ctx, &Data{
		Contestant: c,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  r.timeProvider.Now(),
	}, existing.Contestant.OwnerID)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	c, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, contestantKey(id))
	pipe.SRem(ctx, ownerKey(c.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrap(err, "failed to delete contestant from Redis")
	}

	return nil
}

func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*contestant.Contestant, error) {
	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to get owner contestants from Redis")
	}

	list := make([]*contestant.Contestant, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			c, err := r.Get(ctx, id)
			if err != nil {
				return apperr.Wrapf(err, "failed to get contestant %s", id)
			}
			list[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return list, nil
}
