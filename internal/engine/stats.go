package engine

import (
	"time"

	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/elements"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/traits"
)

// Per-level growth applied for every level above 1. Crit is in percentage points.
const (
	GrowthHP      = 10
	GrowthAttack  = 3
	GrowthDefense = 2
	GrowthCrit    = 1.0
)

type relicTier struct {
	minPotential int
	multiplier   float64
}

// highest first
var relicTiers = []relicTier{
	{minPotential: 7000, multiplier: 3.0}, // Mythic
	{minPotential: 6000, multiplier: 2.8}, // LR
	{minPotential: 5500, multiplier: 2.5}, // UR
	{minPotential: 5000, multiplier: 2.2}, // SSR
	{minPotential: 4000, multiplier: 1.8}, // SR
	{minPotential: 3000, multiplier: 1.5}, // R
	{minPotential: 0, multiplier: 1.2},    // N
}

// RelicMultiplier maps relic potential to its stat factor
func RelicMultiplier(potential int) float64 {
	for _, tier := range relicTiers {
		if potential >= tier.minPotential {
			return tier.multiplier
		}
	}
	return 1.0
}

// statSheet is the in-progress stat line. Crit stays in percentage points
// until normalize turns it into a clamped fraction.
type statSheet struct {
	hp         int
	attack     int
	defense    int
	critPoints float64
	speed      int
	magic      int
	resistance int
	element    elements.Element
}

type statStage func(statSheet) statSheet

// ResolveStats turns a contestant record into battle stats. It is a pure
// function of its inputs: level scaling, relic, traits and buffs are applied
// in that order, each stage building on the previous one.
func ResolveStats(c *contestant.Contestant, now time.Time, catalog *traits.Catalog) combat.EffectiveStats {
	stages := []statStage{
		levelScaling(c.EffectiveLevel()),
		relicBonus(c.EquippedRelic, c.ExclusiveRelic),
		traitBonuses(c.Traits, catalog),
		temporaryBuffs(c.Buffs, now),
	}

	sheet := baseSheet(c)
	for _, stage := range stages {
		sheet = stage(sheet)
	}
	return normalize(sheet)
}

func baseSheet(c *contestant.Contestant) statSheet {
	attrs := c.Attributes
	return statSheet{
		hp:         attrs.HPOrDefault(),
		attack:     attrs.AttackOrDefault(),
		defense:    attrs.DefenseOrDefault(),
		critPoints: attrs.CritOrDefault(),
		speed:      attrs.SpeedOrDefault(),
		magic:      attrs.MagicOrDefault(),
		resistance: attrs.ResistanceOrDefault(),
		element:    elements.Normalize(c.Element),
	}
}

func levelScaling(level int) statStage {
	return func(s statSheet) statSheet {
		if level <= 1 {
			return s
		}
		gained := level - 1
		s.hp += gained * GrowthHP
		s.attack += gained * GrowthAttack
		s.defense += gained * GrowthDefense
		s.critPoints += float64(gained) * GrowthCrit
		return s
	}
}

func relicBonus(equipped *contestant.Relic, exclusive string) statStage {
	return func(s statSheet) statSheet {
		if equipped == nil || exclusive == "" || equipped.Name != exclusive {
			return s
		}
		factor := RelicMultiplier(equipped.Potential)
		s.attack = scale(s.attack, factor)
		s.hp = scale(s.hp, factor)
		s.defense = scale(s.defense, factor)
		s.magic = scale(s.magic, factor)
		return s
	}
}

func traitBonuses(names []string, catalog *traits.Catalog) statStage {
	return func(s statSheet) statSheet {
		for _, name := range names {
			trait, ok := catalog.Lookup(name)
			if !ok {
				continue
			}
			fx := trait.Effects
			if fx.DamageBonus != 0 {
				s.attack = scale(s.attack, 1+fx.DamageBonus)
			}
			if fx.DefenseBonus != 0 {
				s.defense = scale(s.defense, 1+fx.DefenseBonus)
			}
			if fx.HealingBonus != 0 {
				s.hp = scale(s.hp, 1+fx.HealingBonus)
			}
			s.critPoints += fx.CritChance * 100
		}
		return s
	}
}

func temporaryBuffs(buffs []*contestant.Buff, now time.Time) statStage {
	return func(s statSheet) statSheet {
		for _, buff := range buffs {
			if !buff.ActiveAt(now) {
				continue
			}
			switch buff.Type {
			case contestant.BuffTypeAttack:
				s.attack = scale(s.attack, 1+buff.Value)
			case contestant.BuffTypeDefense:
				s.defense = scale(s.defense, 1+buff.Value)
			case contestant.BuffTypeHP:
				s.hp = scale(s.hp, 1+buff.Value)
			case contestant.BuffTypeCrit:
				s.critPoints += buff.Value
			}
		}
		return s
	}
}

func normalize(s statSheet) combat.EffectiveStats {
	crit := s.critPoints / 100.0
	if crit < 0 {
		crit = 0
	}
	if crit > combat.MaxCritChance {
		crit = combat.MaxCritChance
	}

	return combat.EffectiveStats{
		HP:         s.hp,
		Attack:     s.attack,
		Defense:    s.defense,
		CritChance: crit,
		Speed:      s.speed,
		Magic:      s.magic,
		Resistance: s.resistance,
		Element:    s.element,
	}
}

// scale multiplies and truncates, never going below zero
func scale(v int, factor float64) int {
	out := int(float64(v) * factor)
	if out < 0 {
		return 0
	}
	return out
}
