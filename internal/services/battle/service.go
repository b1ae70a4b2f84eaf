package battle

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/kokoro-battle/internal/clock"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	"github.com/KirkDiggler/kokoro-battle/internal/engine"
	apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"
	"github.com/KirkDiggler/kokoro-battle/internal/repositories/battles"
	"github.com/KirkDiggler/kokoro-battle/internal/repositories/contestants"
	"github.com/KirkDiggler/kokoro-battle/internal/uuid"
)

// DefaultBatchConcurrency bounds how many battles a batch runs at once
const DefaultBatchConcurrency = 4

// Service runs battles between stored contestants and keeps their history
type Service interface {
	// Simulate loads two contestants, fights them and records the outcome
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)

	// SimulateBatch runs independent pairings concurrently. Outputs keep the pairing order.
	SimulateBatch(ctx context.Context, input *SimulateBatchInput) ([]*SimulateOutput, error)

	// History lists a contestant's most recent battles, newest first
	History(ctx context.Context, contestantID string, limit int) ([]*combat.Record, error)
}

// SimulateInput names the two contestants to fight
type SimulateInput struct {
	ContestantAID string
	ContestantBID string
	Seed          *uint64 // Optional, random when nil
	MaxRounds     int     // Optional, engine default when 0
}

// SimulateOutput is a finished battle and the history entry stored for it
type SimulateOutput struct {
	BattleID string
	Result   *combat.Result
	Record   *combat.Record
}

// Pairing is one fight within a batch
type Pairing struct {
	ContestantAID string
	ContestantBID string
}

// SimulateBatchInput describes a batch of fights. With a Seed, pairing i uses Seed+i.
type SimulateBatchInput struct {
	Pairings  []Pairing
	Seed      *uint64
	MaxRounds int
}

type service struct {
	engine           *engine.Engine
	contestants      contestants.Repository
	history          battles.Repository
	uuidGenerator    uuid.Generator
	timeProvider     clock.TimeProvider
	batchConcurrency int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Engine           *engine.Engine         // Optional, engine.New(nil) when nil
	Contestants      contestants.Repository // Required
	History          battles.Repository     // Required
	UUIDGenerator    uuid.Generator         // Optional
	TimeProvider     clock.TimeProvider     // Optional
	BatchConcurrency int                    // Optional
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Contestants == nil {
		panic("contestant repository is required")
	}
	if cfg.History == nil {
		panic("history repository is required")
	}

	svc := &service{
		engine:           cfg.Engine,
		contestants:      cfg.Contestants,
		history:          cfg.History,
		uuidGenerator:    cfg.UUIDGenerator,
		timeProvider:     cfg.TimeProvider,
		batchConcurrency: cfg.BatchConcurrency,
	}

	if svc.engine == nil {
		svc.engine = engine.New(nil)
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.timeProvider == nil {
		svc.timeProvider = clock.System()
	}
	if svc.batchConcurrency <= 0 {
		svc.batchConcurrency = DefaultBatchConcurrency
	}

	return svc
}

func (s *service) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.ContestantAID) == "" || strings.TrimSpace(input.ContestantBID) == "" {
		return nil, apperr.InvalidArgument("both contestant IDs are required")
	}
	if err := ctx.Err(); err != nil {
		return nil, apperr.Wrap(err, "battle cancelled")
	}

	a, err := s.contestants.Get(ctx, input.ContestantAID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get contestant '%s'", input.ContestantAID).
			WithMeta("contestant_id", input.ContestantAID)
	}
	b, err := s.contestants.Get(ctx, input.ContestantBID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get contestant '%s'", input.ContestantBID).
			WithMeta("contestant_id", input.ContestantBID)
	}

	opts := []engine.Option{engine.WithMaxRounds(input.MaxRounds)}
	if input.Seed != nil {
		opts = append(opts, engine.WithSeed(*input.Seed))
	}

	result, err := s.engine.Simulate(a, b, opts...)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to simulate battle")
	}

	record := &combat.Record{
		ID:            s.uuidGenerator.New(),
		ContestantIDs: [2]string{a.ID, b.ID},
		Names:         [2]string{a.Name, b.Name},
		Outcome:       result.Outcome,
		Winner:        result.Winner,
		Rounds:        result.Rounds,
		FinalHP:       result.FinalHP,
		Seed:          input.Seed,
		FoughtAt:      s.timeProvider.Now(),
	}

	// the battle already happened; a history failure should not discard it
	if err := s.history.Record(ctx, record); err != nil {
		log.Printf("Failed to record battle %s: %v", record.ID, err)
	}

	log.Printf("Battle %s: %s vs %s, outcome %s after %d rounds", record.ID, a.Name, b.Name, result.Outcome, result.Rounds)

	return &SimulateOutput{
		BattleID: record.ID,
		Result:   result,
		Record:   record,
	}, nil
}

func (s *service) SimulateBatch(ctx context.Context, input *SimulateBatchInput) ([]*SimulateOutput, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if len(input.Pairings) == 0 {
		return []*SimulateOutput{}, nil
	}

	outputs := make([]*SimulateOutput, len(input.Pairings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for i, pairing := range input.Pairings {
		simInput := &SimulateInput{
			ContestantAID: pairing.ContestantAID,
			ContestantBID: pairing.ContestantBID,
			MaxRounds:     input.MaxRounds,
		}
		if input.Seed != nil {
			seed := *input.Seed + uint64(i)
			simInput.Seed = &seed
		}

		g.Go(func() error {
			out, err := s.Simulate(gctx, simInput)
			if err != nil {
				return apperr.Wrapf(err, "pairing %d failed", i).WithMeta("pairing", i)
			}
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outputs, nil
}

func (s *service) History(ctx context.Context, contestantID string, limit int) ([]*combat.Record, error) {
	if strings.TrimSpace(contestantID) == "" {
		return nil, apperr.InvalidArgument("contestant ID is required")
	}

	records, err := s.history.ListByContestant(ctx, contestantID, limit)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get battle history for '%s'", contestantID).
			WithMeta("contestant_id", contestantID)
	}

	return records, nil
}
