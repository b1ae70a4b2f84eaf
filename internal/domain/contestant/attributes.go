package contestant

// Baseline values for attributes the record leaves out
const (
	DefaultHP         = 500
	DefaultAttack     = 50
	DefaultDefense    = 25
	DefaultCrit       = 5.0
	DefaultSpeed      = 50
	DefaultMagic      = 30
	DefaultResistance = 20
)

// Attributes are the base stats of a contestant. Nil or negative fields fall back to defaults.
// Crit is expressed in percentage points (5 means 5%).
type Attributes struct {
	HP         *int     `json:"hp,omitempty" yaml:"hp,omitempty"`
	Attack     *int     `json:"attack,omitempty" yaml:"attack,omitempty"`
	Defense    *int     `json:"defense,omitempty" yaml:"defense,omitempty"`
	Crit       *float64 `json:"crit,omitempty" yaml:"crit,omitempty"`
	Speed      *int     `json:"speed,omitempty" yaml:"speed,omitempty"`
	Magic      *int     `json:"magic,omitempty" yaml:"magic,omitempty"`
	Resistance *int     `json:"resistance,omitempty" yaml:"resistance,omitempty"`
}

func (a Attributes) HPOrDefault() int         { return intOr(a.HP, DefaultHP) }
func (a Attributes) AttackOrDefault() int     { return intOr(a.Attack, DefaultAttack) }
func (a Attributes) DefenseOrDefault() int    { return intOr(a.Defense, DefaultDefense) }
func (a Attributes) SpeedOrDefault() int      { return intOr(a.Speed, DefaultSpeed) }
func (a Attributes) MagicOrDefault() int      { return intOr(a.Magic, DefaultMagic) }
func (a Attributes) ResistanceOrDefault() int { return intOr(a.Resistance, DefaultResistance) }

func (a Attributes) CritOrDefault() float64 {
	if a.Crit == nil || *a.Crit < 0 {
		return DefaultCrit
	}
	return *a.Crit
}

func intOr(v *int, fallback int) int {
	if v == nil || *v < 0 {
		return fallback
	}
	return *v
}

// Int returns a pointer to v, for building Attributes literals
func Int(v int) *int {
	return &v
}

// Float returns a pointer to v, for building Attributes literals
func Float(v float64) *float64 {
	return &v
}
