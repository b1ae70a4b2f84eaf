package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KirkDiggler/kokoro-battle/internal/dice"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
)

// ResolveSkills rolls each skill once and stacks the ones that fire.
// Skills are expected to carry a compiled Effect; an empty or none effect
// still consumes its roll but changes nothing.
func ResolveSkills(skills []*contestant.Skill, roller dice.Roller) *combat.SkillModifiers {
	mods := combat.NewSkillModifiers()

	for _, skill := range skills {
		if skill == nil {
			continue
		}
		if roller.Float64() >= skill.Rarity.ActivationChance() {
			continue
		}
		applySkill(mods, skill)
	}

	return mods
}

func applySkill(mods *combat.SkillModifiers, skill *contestant.Skill) {
	fx := skill.Effect
	switch fx.Kind {
	case contestant.EffectDamageBoost:
		mods.DamageMultiplier += fx.Magnitude
		mods.Log = append(mods.Log, fmt.Sprintf("⚔️ %s activated! (+%d%% damage)", skill.Name, percent(fx.Magnitude)))
	case contestant.EffectHeal:
		mods.Healing += fx.Magnitude
		mods.Log = append(mods.Log, fmt.Sprintf("💚 %s activated! (+%s HP)", skill.Name, strconv.FormatFloat(fx.Magnitude, 'f', -1, 64)))
	case contestant.EffectCritBoost:
		mods.CritBonus += fx.Magnitude
		mods.Log = append(mods.Log, fmt.Sprintf("✨ %s activated! (+%d%% crit chance)", skill.Name, percent(fx.Magnitude)))
	case contestant.EffectDefenseBoost:
		mods.DefenseBoost += fx.Magnitude
		mods.Log = append(mods.Log, fmt.Sprintf("🛡️ %s activated! (+%d%% defense)", skill.Name, percent(fx.Magnitude)))
	}
}

func percent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

// compileSkills copies the skill list with every effect resolved, so the
// round loop never touches effect text
func compileSkills(skills []*contestant.Skill) []*contestant.Skill {
	compiled := make([]*contestant.Skill, 0, len(skills))
	for _, skill := range skills {
		if skill == nil {
			continue
		}
		cp := *skill
		if cp.Effect.Kind == "" {
			cp.Effect = contestant.ParseEffect(cp.EffectText)
		}
		compiled = append(compiled, &cp)
	}
	return compiled
}
