package testutils

import (
	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
)

// CreateTestContestant creates a level 5 contestant with one skill of each kind
func CreateTestContestant(id, ownerID, name string) *contestant.Contestant {
	return &contestant.Contestant{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Element: "Fire",
		Level:   5,
		Attributes: contestant.Attributes{
			HP:     contestant.Int(600),
			Attack: contestant.Int(70),
			Speed:  contestant.Int(55),
		},
		EquippedRelic:  &contestant.Relic{Name: "Ember Fan", Potential: 4200},
		ExclusiveRelic: "Ember Fan",
		Skills: []*contestant.Skill{
			{Name: "Blaze", Rarity: contestant.RarityRare, EffectText: "Increases damage by 25%", Effect: contestant.DamageBoost(0.25)},
			{Name: "Warm Light", Rarity: contestant.RarityUncommon, EffectText: "Heals 80 HP", Effect: contestant.Heal(80)},
		},
		Traits: []string{"Battle Hardened"},
	}
}

// CreateTestRecord creates a history entry in which the first contestant won
func CreateTestRecord(id, winnerID, loserID string) *combat.Record {
	return &combat.Record{
		ID:            id,
		ContestantIDs: [2]string{winnerID, loserID},
		Names:         [2]string{"Winner", "Loser"},
		Outcome:       combat.OutcomeSideA,
		Winner:        "Winner",
		Rounds:        5,
		FinalHP:       [2]int{210, 0},
	}
}
