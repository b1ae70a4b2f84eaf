package battles

import (
	"context"
	"sync"

	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	limit   int
	history map[string][]combat.Record // newest first
}

// NewInMemoryRepository creates a history store that keeps limit battles per contestant
func NewInMemoryRepository(limit int) Repository {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &inMemoryRepository{
		limit:   limit,
		history: make(map[string][]combat.Record),
	}
}

func (r *inMemoryRepository) Record(ctx context.Context, record *combat.Record) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range participants(record) {
		list := append([]combat.Record{*record}, r.history[id]...)
		if len(list) > r.limit {
			list = list[:r.limit]
		}
		r.history[id] = list
	}
	return nil
}

func (r *inMemoryRepository) ListByContestant(ctx context.Context, contestantID string, limit int) ([]*combat.Record, error) {
	if limit <= 0 || limit > r.limit {
		limit = r.limit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.history[contestantID]
	if len(list) > limit {
		list = list[:limit]
	}

	result := make([]*combat.Record, len(list))
	for i := range list {
		rec := list[i]
		result[i] = &rec
	}
	return result, nil
}
