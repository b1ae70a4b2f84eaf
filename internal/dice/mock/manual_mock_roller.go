package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/kokoro-battle/internal/dice"
)

var _ dice.Roller = (*ManualMockRoller)(nil)

// ManualMockRoller implements dice.Roller for testing with predetermined results.
// Float64 and Uniform consume from the same queue in call order.
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []float64
	rollIndex int
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []float64{},
	}
}

// SetNextRoll queues one more result
func (m *ManualMockRoller) SetNextRoll(roll float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queue
func (m *ManualMockRoller) SetRolls(rolls []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []float64{}
	m.rollIndex = 0
}

// Remaining reports how many queued rolls have not been consumed
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) next() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		panic(fmt.Sprintf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls)))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll
}

// Float64 implements dice.Roller.Float64
func (m *ManualMockRoller) Float64() float64 {
	roll := m.next()
	if roll < 0 || roll >= 1 {
		panic(fmt.Sprintf("invalid roll %v for [0,1)", roll))
	}
	return roll
}

// Uniform implements dice.Roller.Uniform. The queued value is returned as-is.
func (m *ManualMockRoller) Uniform(min, max float64) float64 {
	roll := m.next()
	if roll < min || roll > max {
		panic(fmt.Sprintf("invalid roll %v for [%v,%v]", roll, min, max))
	}
	return roll
}
