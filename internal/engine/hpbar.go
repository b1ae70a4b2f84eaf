package engine

import (
	"fmt"
	"strings"
)

// HPBarLength is the number of cells in a rendered HP bar
const HPBarLength = 20

// HPBar renders current/max health as [█████.....] cur/max
func HPBar(current, max, length int) string {
	if max <= 0 {
		return fmt.Sprintf("[%s] 0/%d", strings.Repeat(".", length), max)
	}

	filled := current * length / max
	if filled < 0 {
		filled = 0
	}
	if filled > length {
		filled = length
	}

	return fmt.Sprintf("[%s%s] %d/%d", strings.Repeat("█", filled), strings.Repeat(".", length-filled), current, max)
}
