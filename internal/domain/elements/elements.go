package elements

import "fmt"

// Element is a contestant's elemental affinity
type Element string

const (
	Fire      Element = "Fire"
	Water     Element = "Water"
	Earth     Element = "Earth"
	Lightning Element = "Lightning"
	Ice       Element = "Ice"
	Light     Element = "Light"
	Dark      Element = "Dark"
	Neutral   Element = "Neutral"
)

const (
	SuperEffectiveMultiplier   = 1.25
	NotVeryEffectiveMultiplier = 0.8
)

// Matchup lists what an element beats and what it loses to
type Matchup struct {
	Strong []Element
	Weak   []Element
}

var chart = map[Element]Matchup{
	Fire:      {Strong: []Element{Earth, Ice}, Weak: []Element{Water, Lightning}},
	Water:     {Strong: []Element{Fire, Earth}, Weak: []Element{Lightning, Ice}},
	Earth:     {Strong: []Element{Lightning, Fire}, Weak: []Element{Ice, Water}},
	Lightning: {Strong: []Element{Water, Ice}, Weak: []Element{Earth, Fire}},
	Ice:       {Strong: []Element{Earth, Lightning}, Weak: []Element{Fire, Water}},
	Light:     {Strong: []Element{Dark}, Weak: []Element{Dark}},
	Dark:      {Strong: []Element{Light}, Weak: []Element{Light}},
	Neutral:   {},
}

// Lookup returns the matchup for an element
func Lookup(e Element) (Matchup, bool) {
	m, ok := chart[e]
	return m, ok
}

// All returns every known element
func All() []Element {
	return []Element{Fire, Water, Earth, Lightning, Ice, Light, Dark, Neutral}
}

// Normalize maps an empty tag to Neutral
func Normalize(tag string) Element {
	if tag == "" {
		return Neutral
	}
	return Element(tag)
}

// Effectiveness returns the damage multiplier for attacker hitting defender and
// a log line when it is not neutral. The strong list is checked first, so
// Light and Dark are always super effective against each other.
func Effectiveness(attacker, defender Element) (float64, string) {
	m, ok := chart[attacker]
	if !ok {
		return 1.0, ""
	}

	if contains(m.Strong, defender) {
		return SuperEffectiveMultiplier, fmt.Sprintf("🔥 %s is super effective against %s!", attacker, defender)
	}
	if contains(m.Weak, defender) {
		return NotVeryEffectiveMultiplier, fmt.Sprintf("💧 %s is not very effective against %s...", attacker, defender)
	}
	return 1.0, ""
}

func contains(list []Element, e Element) bool {
	for _, v := range list {
		if v == e {
			return true
		}
	}
	return false
}
