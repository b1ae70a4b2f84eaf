package contestant

import (
	"regexp"
	"strconv"
	"strings"
)

// Rarity is the tier of a learned skill; it sets how often the skill fires
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
)

var activationChance = map[Rarity]float64{
	RarityCommon:    0.3,
	RarityUncommon:  0.4,
	RarityRare:      0.5,
	RarityEpic:      0.6,
	RarityLegendary: 0.7,
	RarityMythical:  0.8,
}

// ActivationChance returns the per-turn trigger probability. Unknown rarities behave as common.
func (r Rarity) ActivationChance() float64 {
	if chance, ok := activationChance[Rarity(strings.ToLower(strings.TrimSpace(string(r))))]; ok {
		return chance
	}
	return activationChance[RarityCommon]
}

// EffectKind tags the variant of a SkillEffect
type EffectKind string

const (
	EffectNone         EffectKind = "none"
	EffectDamageBoost  EffectKind = "damage_boost"
	EffectHeal         EffectKind = "heal"
	EffectCritBoost    EffectKind = "crit_boost"
	EffectDefenseBoost EffectKind = "defense_boost"
)

// Unit says how Magnitude was expressed in the source text
type Unit string

const (
	// UnitFraction magnitudes came from a percentage or a small number (0.2 == 20%)
	UnitFraction Unit = "fraction"
	// UnitAbsolute magnitudes are flat amounts (150 HP)
	UnitAbsolute Unit = "absolute"
)

// Default magnitudes used when the text names a category but no number
const (
	DefaultDamageBoost  = 0.2
	DefaultHeal         = 100.0
	DefaultCritBoost    = 0.1
	DefaultDefenseBoost = 0.15
)

// SkillEffect is the structured form of a skill's free-text effect
type SkillEffect struct {
	Kind      EffectKind `json:"kind" yaml:"kind"`
	Magnitude float64    `json:"magnitude" yaml:"magnitude"`
	Unit      Unit       `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// DamageBoost builds a damage multiplier increment, e.g. 0.25 for +25%
func DamageBoost(v float64) SkillEffect {
	return SkillEffect{Kind: EffectDamageBoost, Magnitude: v, Unit: UnitFraction}
}

// Heal builds a flat heal
func Heal(v float64) SkillEffect {
	return SkillEffect{Kind: EffectHeal, Magnitude: v, Unit: UnitAbsolute}
}

// CritBoost builds a crit chance increment as a fraction
func CritBoost(v float64) SkillEffect {
	return SkillEffect{Kind: EffectCritBoost, Magnitude: v, Unit: UnitFraction}
}

// DefenseBoost builds a defense increment as a fraction
func DefenseBoost(v float64) SkillEffect {
	return SkillEffect{Kind: EffectDefenseBoost, Magnitude: v, Unit: UnitFraction}
}

// Skill is a learned ability that may fire each turn
type Skill struct {
	Name       string      `json:"name" yaml:"name"`
	Rarity     Rarity      `json:"rarity" yaml:"rarity"`
	EffectText string      `json:"effect_text,omitempty" yaml:"effect"`
	Effect     SkillEffect `json:"effect" yaml:"structured_effect,omitempty"`
}

var (
	percentPattern = regexp.MustCompile(`(\d+)%`)
	numberPattern  = regexp.MustCompile(`(\d+)`)
)

// ParseEffect classifies effect text and extracts its magnitude.
// The first matching category wins in the order damage, heal, crit, defense/shield.
// A percentage is read as a fraction; a bare number over 10 is absolute and
// anything smaller is a fraction. Text with no number gets the category default.
func ParseEffect(text string) SkillEffect {
	lower := strings.ToLower(text)

	var kind EffectKind
	var fallback float64
	switch {
	case strings.Contains(lower, "damage"):
		kind, fallback = EffectDamageBoost, DefaultDamageBoost
	case strings.Contains(lower, "heal"):
		kind, fallback = EffectHeal, DefaultHeal
	case strings.Contains(lower, "crit"):
		kind, fallback = EffectCritBoost, DefaultCritBoost
	case strings.Contains(lower, "defense"), strings.Contains(lower, "shield"):
		kind, fallback = EffectDefenseBoost, DefaultDefenseBoost
	default:
		return SkillEffect{Kind: EffectNone}
	}

	magnitude, unit := extractMagnitude(lower, fallback)
	return SkillEffect{Kind: kind, Magnitude: magnitude, Unit: unit}
}

func extractMagnitude(text string, fallback float64) (float64, Unit) {
	if m := percentPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v / 100.0, UnitFraction
		}
	}

	if m := numberPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			if v > 10 {
				return v, UnitAbsolute
			}
			return v / 100.0, UnitFraction
		}
	}

	if fallback > 1 {
		return fallback, UnitAbsolute
	}
	return fallback, UnitFraction
}

// Strengthen returns the effect grown by one duplicate summon of a character
// with the given potential: fraction magnitudes gain (0.05 + potential/10000)
// percentage points. Absolute and inert effects are returned unchanged.
func (e SkillEffect) Strengthen(potential int) SkillEffect {
	if e.Kind == EffectNone || e.Kind == "" || e.Unit != UnitFraction {
		return e
	}

	points := 0.05 + float64(potential)/10000.0
	e.Magnitude += points / 100.0
	return e
}
