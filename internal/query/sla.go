package query

import (
	"time"

	"github.com/triagedesk/backend/internal/models"
)

type SLAState string

const (
	SLAOk       SLAState = "ok"
	SLAWarning  SLAState = "warning"
	SLACritical SLAState = "critical"
	SLABreached SLAState = "breached"
)

// Presentation thresholds; the remaining-minutes computation itself is exact.
const (
	slaCriticalMinutes = 60
	slaWarningMinutes  = 240
)

// SLARemaining reports whole minutes left until the complaint's deadline,
// floored at zero, and the display classification for that remainder.
func SLARemaining(c models.Complaint, now time.Time) (int, SLAState) {
	remaining := int(c.SLADeadline.Sub(now) / time.Minute)
	if remaining < 0 {
		remaining = 0
	}

	switch {
	case remaining == 0 && now.After(c.SLADeadline):
		return 0, SLABreached
	case remaining < slaCriticalMinutes:
		return remaining, SLACritical
	case remaining < slaWarningMinutes:
		return remaining, SLAWarning
	default:
		return remaining, SLAOk
	}
}
