package contestant_test

import (
	"testing"

	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
	"github.com/stretchr/testify/assert"
)

func TestParseEffect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want contestant.SkillEffect
	}{
		{
			name: "damage percentage",
			text: "Increases damage by 25%",
			want: contestant.SkillEffect{Kind: contestant.EffectDamageBoost, Magnitude: 0.25, Unit: contestant.UnitFraction},
		},
		{
			name: "heal absolute amount",
			text: "Heals 150 HP",
			want: contestant.SkillEffect{Kind: contestant.EffectHeal, Magnitude: 150, Unit: contestant.UnitAbsolute},
		},
		{
			name: "small bare number is a fraction",
			text: "Crit up by 5",
			want: contestant.SkillEffect{Kind: contestant.EffectCritBoost, Magnitude: 0.05, Unit: contestant.UnitFraction},
		},
		{
			name: "shield counts as defense",
			text: "Raises a shield",
			want: contestant.SkillEffect{Kind: contestant.EffectDefenseBoost, Magnitude: contestant.DefaultDefenseBoost, Unit: contestant.UnitFraction},
		},
		{
			name: "heal default",
			text: "A gentle healing light",
			want: contestant.SkillEffect{Kind: contestant.EffectHeal, Magnitude: contestant.DefaultHeal, Unit: contestant.UnitAbsolute},
		},
		{
			name: "damage wins over heal",
			text: "Deals damage and heals 30%",
			want: contestant.SkillEffect{Kind: contestant.EffectDamageBoost, Magnitude: 0.3, Unit: contestant.UnitFraction},
		},
		{
			name: "percentage preferred over earlier bare number",
			text: "For 3 turns, damage +40%",
			want: contestant.SkillEffect{Kind: contestant.EffectDamageBoost, Magnitude: 0.4, Unit: contestant.UnitFraction},
		},
		{
			name: "case insensitive",
			text: "CRITICAL focus",
			want: contestant.SkillEffect{Kind: contestant.EffectCritBoost, Magnitude: contestant.DefaultCritBoost, Unit: contestant.UnitFraction},
		},
		{
			name: "unmatched text is inert",
			text: "Summons butterflies",
			want: contestant.SkillEffect{Kind: contestant.EffectNone},
		},
		{
			name: "empty text is inert",
			text: "",
			want: contestant.SkillEffect{Kind: contestant.EffectNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contestant.ParseEffect(tt.text)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.Equal(t, tt.want.Unit, got.Unit)
			assert.InDelta(t, tt.want.Magnitude, got.Magnitude, 1e-9)
		})
	}
}

func TestRarity_ActivationChance(t *testing.T) {
	assert.Equal(t, 0.3, contestant.RarityCommon.ActivationChance())
	assert.Equal(t, 0.4, contestant.RarityUncommon.ActivationChance())
	assert.Equal(t, 0.5, contestant.RarityRare.ActivationChance())
	assert.Equal(t, 0.6, contestant.RarityEpic.ActivationChance())
	assert.Equal(t, 0.7, contestant.RarityLegendary.ActivationChance())
	assert.Equal(t, 0.8, contestant.RarityMythical.ActivationChance())
	assert.Equal(t, 0.8, contestant.Rarity("Mythical").ActivationChance())
	assert.Equal(t, 0.3, contestant.Rarity("SSR").ActivationChance(), "unknown falls back to common")
}

func TestSkillEffect_Strengthen(t *testing.T) {
	t.Run("fraction grows by percentage points", func(t *testing.T) {
		got := contestant.DamageBoost(0.25).Strengthen(5000)
		// 0.05 + 5000/10000 = 0.55 points
		assert.InDelta(t, 0.2555, got.Magnitude, 1e-9)
		assert.Equal(t, contestant.EffectDamageBoost, got.Kind)
	})

	t.Run("absolute untouched", func(t *testing.T) {
		got := contestant.Heal(150).Strengthen(7000)
		assert.Equal(t, 150.0, got.Magnitude)
	})

	t.Run("inert untouched", func(t *testing.T) {
		inert := contestant.SkillEffect{Kind: contestant.EffectNone}
		assert.Equal(t, inert, inert.Strengthen(7000))
	})
}
