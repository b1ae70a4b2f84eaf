package contestants

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
	apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"
	"github.com/KirkDiggler/kokoro-battle/internal/uuid"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu            sync.RWMutex
	contestants   map[string][]byte
	owners        map[string]string // contestantID -> ownerID
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory contestant repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		contestants:   make(map[string][]byte),
		owners:        make(map[string]string),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

// Records are kept serialized so callers never share pointers with the store
func (r *inMemoryRepository) Create(ctx context.Context, c *contestant.Contestant) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = r.uuidGenerator.New()
	}

	data, err := json.Marshal(c)
	if err != nil {
		return apperr.Wrap(err, "failed to serialize contestant")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contestants[c.ID]; exists {
		return apperr.AlreadyExistsf("contestant with ID %s already exists", c.ID)
	}

	r.contestants[c.ID] = data
	r.owners[c.ID] = c.OwnerID
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*contestant.Contestant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.get(id)
}

func (r *inMemoryRepository) get(id string) (*contestant.Contestant, error) {
	data, exists := r.contestants[id]
	if !exists {
		return nil, apperr.NotFoundf("contestant not found: %s", id)
	}

	var c contestant.Contestant
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, apperr.Wrap(err, "failed to deserialize contestant")
	}
	return &c, nil
}

func (r *inMemoryRepository) Update(ctx context.Context, c *contestant.Contestant) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		return apperr.InvalidArgument("contestant ID cannot be empty")
	}

	data, err := json.Marshal(c)
	if err != nil {
		return apperr.Wrap(err, "failed to serialize contestant")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contestants[c.ID]; !exists {
		return apperr.NotFoundf("contestant not found: %s", c.ID)
	}

	r.contestants[c.ID] = data
	r.owners[c.ID] = c.OwnerID
	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contestants[id]; !exists {
		return apperr.NotFoundf("contestant not found: %s", id)
	}

	delete(r.contestants, id)
	delete(r.owners, id)
	return nil
}

// ListByOwner returns the owner's contestants sorted by ID
func (r *inMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*contestant.Contestant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0)
	for id, owner := range r.owners {
		if owner == ownerID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	result := make([]*contestant.Contestant, 0, len(ids))
	for _, id := range ids {
		c, err := r.get(id)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}
