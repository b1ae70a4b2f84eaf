package combat

import "time"

// Record is the persisted summary of one battle, kept for battle history
type Record struct {
	ID            string    `json:"id"`
	ContestantIDs [2]string `json:"contestant_ids"`
	Names         [2]string `json:"names"`
	Outcome       Outcome   `json:"outcome"`
	Winner        string    `json:"winner,omitempty"`
	Rounds        int       `json:"rounds"`
	FinalHP       [2]int    `json:"final_hp"`
	Seed          *uint64   `json:"seed,omitempty"`
	FoughtAt      time.Time `json:"fought_at"`
}

// WonBy reports whether the given contestant won this battle
func (r *Record) WonBy(contestantID string) bool {
	switch r.Outcome {
	case OutcomeSideA:
		return r.ContestantIDs[SideA] == contestantID
	case OutcomeSideB:
		return r.ContestantIDs[SideB] == contestantID
	default:
		return false
	}
}
