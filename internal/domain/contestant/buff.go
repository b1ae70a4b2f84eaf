package contestant

import (
	"strings"
	"time"
)

// BuffType names the stat a temporary buff touches
type BuffType string

const (
	BuffTypeAttack  BuffType = "attack_boost"
	BuffTypeDefense BuffType = "defense_boost"
	BuffTypeHP      BuffType = "hp_boost"
	BuffTypeCrit    BuffType = "crit_boost"
)

// Buff is a time-bounded stat modifier granted by dreams, items and events.
// ExpiresAt is kept as the raw timestamp the owning application stored.
type Buff struct {
	Type      BuffType `json:"type" yaml:"type"`
	Value     float64  `json:"value" yaml:"value"`
	ExpiresAt string   `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

var expiryLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ActiveAt reports whether the buff applies at now.
// An empty expiry never expires; an unparseable one is inactive.
// Timestamps without a zone are read as UTC.
func (b *Buff) ActiveAt(now time.Time) bool {
	if b == nil {
		return false
	}

	raw := strings.TrimSpace(b.ExpiresAt)
	if raw == "" {
		return true
	}

	for _, layout := range expiryLayouts {
		expires, err := time.ParseInLocation(layout, raw, time.UTC)
		if err != nil {
			continue
		}
		return now.Before(expires)
	}

	return false
}
