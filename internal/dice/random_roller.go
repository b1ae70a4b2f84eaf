package dice

import (
	"math/rand/v2"
)

// randomRoller implements Roller on top of a PCG stream
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller with a random seed
func NewRandomRoller() Roller {
	return NewSeededRoller(rand.Uint64())
}

// NewSeededRoller creates a roller whose sequence is fully determined by seed
func NewSeededRoller(seed uint64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Float64 implements Roller.Float64
func (r *randomRoller) Float64() float64 {
	return r.rng.Float64()
}

// Uniform implements Roller.Uniform
func (r *randomRoller) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.rng.Float64()*(max-min)
}
