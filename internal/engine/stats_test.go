package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/elements"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/traits"
	"github.com/KirkDiggler/kokoro-battle/internal/engine"
)

var statsNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestResolveStats_Defaults(t *testing.T) {
	stats := engine.ResolveStats(&contestant.Contestant{Name: "Blank"}, statsNow, traits.Default())

	assert.Equal(t, 500, stats.HP)
	assert.Equal(t, 50, stats.Attack)
	assert.Equal(t, 25, stats.Defense)
	assert.InDelta(t, 0.05, stats.CritChance, 1e-9)
	assert.Equal(t, 50, stats.Speed)
	assert.Equal(t, 30, stats.Magic)
	assert.Equal(t, 20, stats.Resistance)
	assert.Equal(t, elements.Neutral, stats.Element)
}

func TestResolveStats_NegativeAttributesFallBack(t *testing.T) {
	c := &contestant.Contestant{
		Name: "Broken",
		Attributes: contestant.Attributes{
			HP:     contestant.Int(-10),
			Attack: contestant.Int(-1),
			Crit:   contestant.Float(-3),
		},
	}

	stats := engine.ResolveStats(c, statsNow, nil)

	assert.Equal(t, 500, stats.HP)
	assert.Equal(t, 50, stats.Attack)
	assert.InDelta(t, 0.05, stats.CritChance, 1e-9)
}

func TestResolveStats_LevelScaling(t *testing.T) {
	tests := []struct {
		name        string
		level       int
		wantHP      int
		wantAttack  int
		wantDefense int
		wantCrit    float64
	}{
		{name: "level zero counts as one", level: 0, wantHP: 500, wantAttack: 50, wantDefense: 25, wantCrit: 0.05},
		{name: "level one is base", level: 1, wantHP: 500, wantAttack: 50, wantDefense: 25, wantCrit: 0.05},
		{name: "level five", level: 5, wantHP: 540, wantAttack: 62, wantDefense: 33, wantCrit: 0.09},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := engine.ResolveStats(&contestant.Contestant{Name: "Lv", Level: tt.level}, statsNow, nil)

			assert.Equal(t, tt.wantHP, stats.HP)
			assert.Equal(t, tt.wantAttack, stats.Attack)
			assert.Equal(t, tt.wantDefense, stats.Defense)
			assert.InDelta(t, tt.wantCrit, stats.CritChance, 1e-9)
		})
	}
}

func TestRelicMultiplier(t *testing.T) {
	tests := []struct {
		potential int
		want      float64
	}{
		{potential: 9000, want: 3.0},
		{potential: 7000, want: 3.0},
		{potential: 6999, want: 2.8},
		{potential: 6000, want: 2.8},
		{potential: 5500, want: 2.5},
		{potential: 5000, want: 2.2},
		{potential: 4000, want: 1.8},
		{potential: 3000, want: 1.5},
		{potential: 2999, want: 1.2},
		{potential: 0, want: 1.2},
		{potential: -1, want: 1.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.RelicMultiplier(tt.potential), "potential %d", tt.potential)
	}
}

func TestResolveStats_Relic(t *testing.T) {
	t.Run("matching exclusive relic applies tier", func(t *testing.T) {
		c := &contestant.Contestant{
			Name:           "Holder",
			EquippedRelic:  &contestant.Relic{Name: "Moon Blade", Potential: 7200},
			ExclusiveRelic: "Moon Blade",
		}

		stats := engine.ResolveStats(c, statsNow, nil)

		assert.Equal(t, 1500, stats.HP)
		assert.Equal(t, 150, stats.Attack)
		assert.Equal(t, 75, stats.Defense)
		assert.Equal(t, 90, stats.Magic)
		assert.Equal(t, 50, stats.Speed)
	})

	t.Run("mismatched relic leaves stats unchanged", func(t *testing.T) {
		c := &contestant.Contestant{
			Name:           "Borrower",
			EquippedRelic:  &contestant.Relic{Name: "Moon Blade", Potential: 7200},
			ExclusiveRelic: "Sun Shield",
		}

		stats := engine.ResolveStats(c, statsNow, nil)
		base := engine.ResolveStats(&contestant.Contestant{Name: "Base"}, statsNow, nil)

		assert.Equal(t, base, stats)
	})

	t.Run("no exclusive relic leaves stats unchanged", func(t *testing.T) {
		c := &contestant.Contestant{
			Name:          "Wanderer",
			EquippedRelic: &contestant.Relic{Name: "Moon Blade", Potential: 7200},
		}

		stats := engine.ResolveStats(c, statsNow, nil)

		assert.Equal(t, 50, stats.Attack)
	})

	t.Run("relic applies after level scaling", func(t *testing.T) {
		c := &contestant.Contestant{
			Name:           "Veteran",
			Level:          5,
			EquippedRelic:  &contestant.Relic{Name: "Moon Blade", Potential: 7000},
			ExclusiveRelic: "Moon Blade",
		}

		stats := engine.ResolveStats(c, statsNow, nil)

		assert.Equal(t, 186, stats.Attack)
		assert.Equal(t, 1620, stats.HP)
	})
}

func TestResolveStats_Traits(t *testing.T) {
	catalog := traits.Default()

	tests := []struct {
		name        string
		traits      []string
		wantAttack  int
		wantDefense int
		wantHP      int
		wantCrit    float64
	}{
		{name: "damage bonus", traits: []string{"Battle Hardened"}, wantAttack: 55, wantDefense: 25, wantHP: 500, wantCrit: 0.05},
		{name: "defense bonus truncates", traits: []string{"Iron Will"}, wantAttack: 50, wantDefense: 28, wantHP: 500, wantCrit: 0.05},
		{name: "crit chance adds points", traits: []string{"Keen Eye"}, wantAttack: 50, wantDefense: 25, wantHP: 500, wantCrit: 0.10},
		{name: "healing bonus raises hp", traits: []string{"Gentle Soul"}, wantAttack: 50, wantDefense: 25, wantHP: 550, wantCrit: 0.05},
		{name: "mixed effects", traits: []string{"Berserker"}, wantAttack: 60, wantDefense: 22, wantHP: 500, wantCrit: 0.05},
		{name: "unknown trait is skipped", traits: []string{"Nonexistent"}, wantAttack: 50, wantDefense: 25, wantHP: 500, wantCrit: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := engine.ResolveStats(&contestant.Contestant{Name: "T", Traits: tt.traits}, statsNow, catalog)

			assert.Equal(t, tt.wantAttack, stats.Attack)
			assert.Equal(t, tt.wantDefense, stats.Defense)
			assert.Equal(t, tt.wantHP, stats.HP)
			assert.InDelta(t, tt.wantCrit, stats.CritChance, 1e-9)
		})
	}
}

func TestResolveStats_CustomCatalog(t *testing.T) {
	catalog := traits.NewCatalog(&traits.Trait{
		Name:    "Glass Cannon",
		Effects: traits.Effects{DamageBonus: 1.0},
	})

	stats := engine.ResolveStats(&contestant.Contestant{Name: "T", Traits: []string{"Glass Cannon"}}, statsNow, catalog)

	assert.Equal(t, 100, stats.Attack)
}

func TestResolveStats_Buffs(t *testing.T) {
	tests := []struct {
		name       string
		buff       *contestant.Buff
		wantAttack int
		wantHP     int
		wantCrit   float64
	}{
		{
			name:       "active attack boost",
			buff:       &contestant.Buff{Type: contestant.BuffTypeAttack, Value: 0.5, ExpiresAt: "2024-06-02T00:00:00Z"},
			wantAttack: 75, wantHP: 500, wantCrit: 0.05,
		},
		{
			name:       "naive timestamp read as UTC",
			buff:       &contestant.Buff{Type: contestant.BuffTypeAttack, Value: 0.5, ExpiresAt: "2024-06-01T12:30:00"},
			wantAttack: 75, wantHP: 500, wantCrit: 0.05,
		},
		{
			name:       "expired buff ignored",
			buff:       &contestant.Buff{Type: contestant.BuffTypeAttack, Value: 0.5, ExpiresAt: "2024-05-01T00:00:00Z"},
			wantAttack: 50, wantHP: 500, wantCrit: 0.05,
		},
		{
			name:       "malformed expiry ignored",
			buff:       &contestant.Buff{Type: contestant.BuffTypeAttack, Value: 0.5, ExpiresAt: "next tuesday"},
			wantAttack: 50, wantHP: 500, wantCrit: 0.05,
		},
		{
			name:       "missing expiry never expires",
			buff:       &contestant.Buff{Type: contestant.BuffTypeHP, Value: 0.2},
			wantAttack: 50, wantHP: 600, wantCrit: 0.05,
		},
		{
			name:       "crit boost is additive points",
			buff:       &contestant.Buff{Type: contestant.BuffTypeCrit, Value: 10},
			wantAttack: 50, wantHP: 500, wantCrit: 0.15,
		},
		{
			name:       "unknown buff type ignored",
			buff:       &contestant.Buff{Type: "luck_boost", Value: 3},
			wantAttack: 50, wantHP: 500, wantCrit: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &contestant.Contestant{Name: "B", Buffs: []*contestant.Buff{tt.buff}}

			stats := engine.ResolveStats(c, statsNow, nil)

			assert.Equal(t, tt.wantAttack, stats.Attack)
			assert.Equal(t, tt.wantHP, stats.HP)
			assert.InDelta(t, tt.wantCrit, stats.CritChance, 1e-9)
		})
	}
}

func TestResolveStats_CritClamped(t *testing.T) {
	t.Run("upper bound", func(t *testing.T) {
		c := &contestant.Contestant{
			Name:       "Lucky",
			Level:      50,
			Attributes: contestant.Attributes{Crit: contestant.Float(90)},
			Traits:     []string{"Keen Eye", "Lucky Star"},
		}

		stats := engine.ResolveStats(c, statsNow, traits.Default())

		assert.Equal(t, combat.MaxCritChance, stats.CritChance)
	})

	t.Run("lower bound", func(t *testing.T) {
		c := &contestant.Contestant{
			Name:  "Cursed",
			Buffs: []*contestant.Buff{{Type: contestant.BuffTypeCrit, Value: -50}},
		}

		stats := engine.ResolveStats(c, statsNow, nil)

		assert.Zero(t, stats.CritChance)
	})
}

func TestResolveStats_DoesNotMutateRecord(t *testing.T) {
	c := &contestant.Contestant{
		Name:           "Still",
		Level:          10,
		Attributes:     contestant.Attributes{Attack: contestant.Int(80)},
		EquippedRelic:  &contestant.Relic{Name: "Orb", Potential: 5000},
		ExclusiveRelic: "Orb",
		Traits:         []string{"Berserker"},
	}

	_ = engine.ResolveStats(c, statsNow, traits.Default())

	assert.Equal(t, 80, *c.Attributes.Attack)
	assert.Equal(t, 10, c.Level)
	assert.Equal(t, 5000, c.EquippedRelic.Potential)
}
