package contestants

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcontestants -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
)

// Repository defines the interface for contestant storage
type Repository interface {
	// Create stores a new contestant. An empty ID is filled in.
	Create(ctx context.Context, c *contestant.Contestant) error

	// Get retrieves a contestant by ID
	Get(ctx context.Context, id string) (*contestant.Contestant, error)

	// Update replaces an existing contestant
	Update(ctx context.Context, c *contestant.Contestant) error

	// Delete removes a contestant
	Delete(ctx context.Context, id string) error

	// ListByOwner retrieves every contestant a player owns
	ListByOwner(ctx context.Context, ownerID string) ([]*contestant.Contestant, error)
}
