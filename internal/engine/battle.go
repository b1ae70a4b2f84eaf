package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/kokoro-battle/internal/dice"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
	apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"
)

// fighter is a contestant prepared for one battle
type fighter struct {
	side   combat.Side
	name   string
	stats  combat.EffectiveStats
	skills []*contestant.Skill
}

// Simulate runs a full battle between a (side A) and b (side B).
//
// Turn order each round goes to the higher effective speed; equal speed
// always favors side A. Records are only read. The only error is a
// malformed record, reported before any round runs.
func (e *Engine) Simulate(a, b *contestant.Contestant, opts ...Option) (*combat.Result, error) {
	if err := a.Validate(); err != nil {
		return nil, apperr.Wrap(err, "invalid contestant A")
	}
	if err := b.Validate(); err != nil {
		return nil, apperr.Wrap(err, "invalid contestant B")
	}

	o := &simulateOptions{maxRounds: e.maxRounds}
	for _, opt := range opts {
		opt(o)
	}
	if o.roller == nil {
		o.roller = dice.NewRandomRoller()
	}

	now := e.timeProvider.Now()
	fighters := [2]*fighter{
		{side: combat.SideA, name: a.Name, stats: ResolveStats(a, now, e.traits), skills: compileSkills(a.Skills)},
		{side: combat.SideB, name: b.Name, stats: ResolveStats(b, now, e.traits), skills: compileSkills(b.Skills)},
	}

	return runBattle(fighters, o.maxRounds, o.roller), nil
}

// TurnOrder returns which side acts first for the given speeds
func TurnOrder(speedA, speedB int) (first, second combat.Side) {
	if speedA >= speedB {
		return combat.SideA, combat.SideB
	}
	return combat.SideB, combat.SideA
}

func runBattle(fighters [2]*fighter, maxRounds int, roller dice.Roller) *combat.Result {
	a, b := fighters[combat.SideA], fighters[combat.SideB]
	state := combat.NewBattleState(a.stats, b.stats)
	_ = state.Start()

	state.Log = append(state.Log,
		fmt.Sprintf("🏟️ **Battle begins between %s and %s!**", a.name, b.name),
		fmt.Sprintf("❤️ %s: %d HP | %s: %d HP", a.name, a.stats.HP, b.name, b.stats.HP),
		"",
	)

	first, second := TurnOrder(a.stats.Speed, b.stats.Speed)
	roundLogs := []string{}

	for state.Round < maxRounds && !state.Decided() {
		state.Round++
		lines := []string{fmt.Sprintf("🎯 **Round %d**", state.Round)}

		lines = append(lines, takeTurn(state, fighters[first], fighters[second], roller)...)

		if !state.Decided() {
			lines = append(lines, takeTurn(state, fighters[second], fighters[first], roller)...)
			lines = append(lines,
				fmt.Sprintf("❤️ %s: %s", a.name, HPBar(state.CurrentHP[combat.SideA], state.MaxHP[combat.SideA], HPBarLength)),
				fmt.Sprintf("❤️ %s: %s", b.name, HPBar(state.CurrentHP[combat.SideB], state.MaxHP[combat.SideB], HPBarLength)),
			)
		}

		roundLogs = append(roundLogs, strings.Join(lines, "\n"))
		state.Log = append(state.Log, lines...)
	}

	state.Finish()

	outcome := combat.DecideOutcome(state.CurrentHP[combat.SideA], state.CurrentHP[combat.SideB])
	result := &combat.Result{
		Outcome:   outcome,
		FinalHP:   state.CurrentHP,
		Rounds:    state.Round,
		RoundLogs: roundLogs,
		Stats:     [2]combat.EffectiveStats{a.stats, b.stats},
	}

	switch outcome {
	case combat.OutcomeSideA:
		result.Winner = a.name
	case combat.OutcomeSideB:
		result.Winner = b.name
	}

	if result.Winner != "" {
		state.Log = append(state.Log, "", fmt.Sprintf("🏆 **%s wins the battle!**", result.Winner))
	} else {
		state.Log = append(state.Log, "", "🤝 **The battle ends in a draw!**")
	}
	result.Log = state.Log

	return result
}

// takeTurn resolves one attack from actor to target and applies it to state
func takeTurn(state *combat.BattleState, actor, target *fighter, roller dice.Roller) []string {
	mods := ResolveSkills(actor.skills, roller)
	lines := append([]string{}, mods.Log...)

	hit := CalculateDamage(actor.stats, target.stats, mods, roller)
	lines = append(lines, hit.Log...)

	state.Damage(target.side, hit.Amount)

	dealt := fmt.Sprintf("💥 %s deals **%d** damage!", actor.name, hit.Amount)
	if hit.Critical {
		dealt += " 💥"
	}
	lines = append(lines, dealt)

	if heal := int(mods.Healing); heal > 0 {
		state.Heal(actor.side, heal)
		lines = append(lines, fmt.Sprintf("💚 %s recovers **%d** HP!", actor.name, heal))
	}

	return lines
}
