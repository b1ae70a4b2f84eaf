package combat

import "fmt"

// Phase is the lifecycle stage of a simulation
type Phase string

const (
	PhaseNotStarted      Phase = "not_started"
	PhaseRoundInProgress Phase = "round_in_progress"
	PhaseFinished        Phase = "finished"
)

// Side identifies a contestant slot. SideA is the first contestant passed in.
type Side int

const (
	SideA Side = iota
	SideB
)

// Other returns the opposing side
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// BattleState is the mutable state of one simulation. It never outlives the call.
type BattleState struct {
	Phase     Phase
	MaxHP     [2]int
	CurrentHP [2]int
	Round     int
	Log       []string
}

// NewBattleState starts both sides at full health
func NewBattleState(a, b EffectiveStats) *BattleState {
	return &BattleState{
		Phase:     PhaseNotStarted,
		MaxHP:     [2]int{a.HP, b.HP},
		CurrentHP: [2]int{a.HP, b.HP},
		Log:       []string{},
	}
}

// Start moves the battle into its round loop
func (s *BattleState) Start() error {
	if s.Phase != PhaseNotStarted {
		return fmt.Errorf("cannot start battle in phase %s", s.Phase)
	}
	s.Phase = PhaseRoundInProgress
	return nil
}

// Finish ends the battle
func (s *BattleState) Finish() {
	s.Phase = PhaseFinished
}

// Damage lowers a side's HP, never below zero
func (s *BattleState) Damage(side Side, amount int) {
	if amount < 0 {
		return
	}
	s.CurrentHP[side] -= amount
	if s.CurrentHP[side] < 0 {
		s.CurrentHP[side] = 0
	}
}

// Heal raises a side's HP, never above its max
func (s *BattleState) Heal(side Side, amount int) {
	if amount <= 0 {
		return
	}
	s.CurrentHP[side] += amount
	if s.CurrentHP[side] > s.MaxHP[side] {
		s.CurrentHP[side] = s.MaxHP[side]
	}
}

// Decided reports whether either side is down
func (s *BattleState) Decided() bool {
	return s.CurrentHP[SideA] <= 0 || s.CurrentHP[SideB] <= 0
}
