package tickets

import (
	"fmt"
	"time"
)

// ElapsedSince renders the time a ticket has been open: minutes under an
// hour, hours plus minutes under a day, whole days after that.
func ElapsedSince(from, now time.Time) string {
	d := now.Sub(from)
	if d < 0 {
		d = 0
	}

	minutes := int(d.Minutes())
	switch {
	case minutes < 60:
		return fmt.Sprintf("%d minutos", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%d horas %d minutos", minutes/60, minutes%60)
	default:
		return fmt.Sprintf("%d dias", minutes/(24*60))
	}
}
