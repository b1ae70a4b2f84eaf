package combat

// Outcome is the verdict of a finished battle
type Outcome string

const (
	OutcomeSideA Outcome = "side_a"
	OutcomeSideB Outcome = "side_b"
	OutcomeDraw  Outcome = "draw"
)

// Result is everything a caller needs to render a battle and apply rewards
type Result struct {
	Outcome   Outcome           `json:"outcome"`
	Winner    string            `json:"winner,omitempty"`
	FinalHP   [2]int            `json:"final_hp"`
	Rounds    int               `json:"rounds"`
	Log       []string          `json:"log"`
	RoundLogs []string          `json:"round_logs"`
	Stats     [2]EffectiveStats `json:"stats"`
}

// IsDraw reports whether neither side won
func (r *Result) IsDraw() bool {
	return r.Outcome == OutcomeDraw
}

// DecideOutcome compares remaining HP; strictly more HP wins
func DecideOutcome(hpA, hpB int) Outcome {
	switch {
	case hpA > hpB:
		return OutcomeSideA
	case hpB > hpA:
		return OutcomeSideB
	default:
		return OutcomeDraw
	}
}
