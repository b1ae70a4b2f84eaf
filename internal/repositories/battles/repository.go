package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=mockbattles -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
)

// DefaultHistoryLimit is how many battles are kept per contestant
const DefaultHistoryLimit = 10

// Repository stores battle history
type Repository interface {
	// Record appends a battle to the history of both contestants
	Record(ctx context.Context, record *combat.Record) error

	// ListByContestant returns the most recent battles first. A limit below 1 means the retention limit.
	ListByContestant(ctx context.Context, contestantID string, limit int) ([]*combat.Record, error)
}

func validateRecord(record *combat.Record) error {
	if record == nil {
		return errNilRecord
	}
	if record.ID == "" {
		return errMissingID
	}
	return nil
}

// participants returns the distinct, non-empty contestant IDs of a record
func participants(record *combat.Record) []string {
	ids := make([]string, 0, 2)
	for _, id := range record.ContestantIDs {
		if id == "" {
			continue
		}
		if len(ids) == 1 && ids[0] == id {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
