package combat

// SkillModifiers aggregates the skills that fired during one turn
type SkillModifiers struct {
	DamageMultiplier float64
	Healing          float64
	CritBonus        float64
	DefenseBoost     float64
	Log              []string
}

// NewSkillModifiers returns the neutral bundle
func NewSkillModifiers() *SkillModifiers {
	return &SkillModifiers{
		DamageMultiplier: 1.0,
		Log:              []string{},
	}
}

// Neutral reports whether no skill changed anything
func (m *SkillModifiers) Neutral() bool {
	return m.DamageMultiplier == 1.0 && m.Healing == 0 && m.CritBonus == 0 && m.DefenseBoost == 0
}
