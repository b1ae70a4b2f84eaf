package engine

import (
	"github.com/KirkDiggler/kokoro-battle/internal/clock"
	"github.com/KirkDiggler/kokoro-battle/internal/dice"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/traits"
)

// DefaultMaxRounds is the round cap when neither the engine config nor the call overrides it
const DefaultMaxRounds = 10

// Engine resolves battles. It holds only read-only configuration, so one
// value can serve any number of concurrent simulations.
type Engine struct {
	maxRounds    int
	traits       *traits.Catalog
	timeProvider clock.TimeProvider
}

// Config holds configuration for the engine
type Config struct {
	MaxRounds    int
	Traits       *traits.Catalog
	TimeProvider clock.TimeProvider
}

// New creates an engine. A nil config uses the embedded trait catalog and the system clock.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}

	e := &Engine{
		maxRounds:    cfg.MaxRounds,
		traits:       cfg.Traits,
		timeProvider: cfg.TimeProvider,
	}

	if e.maxRounds <= 0 {
		e.maxRounds = DefaultMaxRounds
	}
	if e.traits == nil {
		e.traits = traits.Default()
	}
	if e.timeProvider == nil {
		e.timeProvider = clock.System()
	}

	return e
}

// MaxRounds returns the configured round cap
func (e *Engine) MaxRounds() int {
	return e.maxRounds
}

type simulateOptions struct {
	maxRounds int
	roller    dice.Roller
}

// Option tweaks a single Simulate call
type Option func(*simulateOptions)

// WithMaxRounds overrides the round cap for one battle; values below 1 are ignored
func WithMaxRounds(n int) Option {
	return func(o *simulateOptions) {
		if n > 0 {
			o.maxRounds = n
		}
	}
}

// WithRoller supplies the random source for one battle
func WithRoller(r dice.Roller) Option {
	return func(o *simulateOptions) {
		if r != nil {
			o.roller = r
		}
	}
}

// WithSeed makes the battle reproducible
func WithSeed(seed uint64) Option {
	return func(o *simulateOptions) {
		o.roller = dice.NewSeededRoller(seed)
	}
}
