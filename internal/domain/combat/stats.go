package combat

import "github.com/KirkDiggler/kokoro-battle/internal/domain/elements"

// MaxCritChance caps crit probability after resolution
const MaxCritChance = 0.95

// EffectiveStats is the resolved stat line a contestant fights with.
// CritChance is a fraction in [0, MaxCritChance].
type EffectiveStats struct {
	HP         int              `json:"hp"`
	Attack     int              `json:"attack"`
	Defense    int              `json:"defense"`
	CritChance float64          `json:"crit_chance"`
	Speed      int              `json:"speed"`
	Magic      int              `json:"magic"`
	Resistance int              `json:"resistance"`
	Element    elements.Element `json:"element"`
}
