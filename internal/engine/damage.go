package engine

import (
	"github.com/KirkDiggler/kokoro-battle/internal/dice"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/elements"
)

const (
	// CritMultiplier scales damage on a critical hit
	CritMultiplier = 1.5

	VarianceMin = 0.85
	VarianceMax = 1.15

	// DefenseSoftCap is the k in defense/(defense+k)
	DefenseSoftCap = 100.0

	MinDamage = 1
)

// Hit is the outcome of one attack
type Hit struct {
	Amount   int
	Critical bool
	Log      []string
}

// CalculateDamage resolves one attack. It draws exactly two samples from
// roller: the variance factor, then the crit roll.
func CalculateDamage(attacker, defender combat.EffectiveStats, mods *combat.SkillModifiers, roller dice.Roller) Hit {
	if mods == nil {
		mods = combat.NewSkillModifiers()
	}

	dmg := float64(attacker.Attack) * mods.DamageMultiplier
	dmg *= roller.Uniform(VarianceMin, VarianceMax)

	def := float64(defender.Defense)
	dmg *= 1 - def/(def+DefenseSoftCap)

	hit := Hit{Log: []string{}}
	if roller.Float64() < attacker.CritChance+mods.CritBonus {
		hit.Critical = true
		dmg *= CritMultiplier
		hit.Log = append(hit.Log, "💥 Critical hit!")
	}

	mult, text := elements.Effectiveness(attacker.Element, defender.Element)
	dmg *= mult
	if text != "" {
		hit.Log = append(hit.Log, text)
	}

	hit.Amount = int(dmg)
	if hit.Amount < MinDamage {
		hit.Amount = MinDamage
	}
	return hit
}
