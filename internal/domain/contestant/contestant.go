package contestant

import (
	"strings"

	apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"
)

// Contestant is one side of a battle as supplied by the owning application.
// The engine only reads it.
type Contestant struct {
	ID             string     `json:"id" yaml:"id"`
	OwnerID        string     `json:"owner_id" yaml:"owner_id"`
	Name           string     `json:"name" yaml:"name"`
	Element        string     `json:"element" yaml:"element"`
	Level          int        `json:"level" yaml:"level"`
	Attributes     Attributes `json:"attributes" yaml:"attributes"`
	EquippedRelic  *Relic     `json:"equipped_relic,omitempty" yaml:"equipped_relic,omitempty"`
	ExclusiveRelic string     `json:"exclusive_relic,omitempty" yaml:"exclusive_relic,omitempty"`
	Skills         []*Skill   `json:"skills,omitempty" yaml:"skills,omitempty"`
	Traits         []string   `json:"traits,omitempty" yaml:"traits,omitempty"`
	Buffs          []*Buff    `json:"buffs,omitempty" yaml:"buffs,omitempty"`
}

// Relic is an equippable item. Its Potential picks the bonus tier.
type Relic struct {
	Name      string `json:"name" yaml:"name"`
	Potential int    `json:"potential" yaml:"potential"`
}

// Validate rejects records the engine cannot fight with
func (c *Contestant) Validate() error {
	if c == nil {
		return apperr.InvalidArgument("contestant cannot be nil")
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperr.InvalidArgument("contestant name is required").WithMeta("id", c.ID)
	}
	return nil
}

// EffectiveLevel returns the level used for scaling; anything below 1 counts as 1
func (c *Contestant) EffectiveLevel() int {
	if c.Level < 1 {
		return 1
	}
	return c.Level
}

// Normalize compiles skill effect text into structured effects.
// Loaders call it once so the battle loop never parses strings.
func (c *Contestant) Normalize() {
	for _, skill := range c.Skills {
		if skill == nil {
			continue
		}
		if skill.Effect.Kind == "" {
			skill.Effect = ParseEffect(skill.EffectText)
		}
	}
}
