package query

import (
	"testing"
	"time"

	"github.com/triagedesk/backend/internal/models"
)

func urgentComplaint(created time.Time) models.Complaint {
	return models.Complaint{
		Priority:    models.PriorityUrgent,
		Timestamp:   created,
		SLADeadline: created.Add(4 * time.Hour),
	}
}

func TestSLARemainingBreached(t *testing.T) {
	created := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	c := urgentComplaint(created)

	remaining, state := SLARemaining(c, created.Add(5*time.Hour))
	if remaining != 0 {
		t.Fatalf("expected remaining 0, got %d", remaining)
	}
	if state != SLABreached {
		t.Fatalf("expected breached, got %s", state)
	}
}

func TestSLARemainingOk(t *testing.T) {
	created := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	c := urgentComplaint(created)

	remaining, state := SLARemaining(c, created)
	if remaining != 240 {
		t.Fatalf("expected 240 minutes, got %d", remaining)
	}
	if state != SLAOk {
		t.Fatalf("expected ok, got %s", state)
	}
}

func TestSLARemainingWarningAndCritical(t *testing.T) {
	created := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	c := urgentComplaint(created)

	remaining, state := SLARemaining(c, created.Add(1*time.Minute))
	if remaining != 239 || state != SLAWarning {
		t.Fatalf("expected 239/warning, got %d/%s", remaining, state)
	}

	remaining, state = SLARemaining(c, created.Add(3*time.Hour+30*time.Minute))
	if remaining != 30 || state != SLACritical {
		t.Fatalf("expected 30/critical, got %d/%s", remaining, state)
	}
}

func TestSLARemainingAtExactDeadline(t *testing.T) {
	created := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	c := urgentComplaint(created)

	// The deadline instant itself has not passed yet.
	remaining, state := SLARemaining(c, c.SLADeadline)
	if remaining != 0 || state != SLACritical {
		t.Fatalf("expected 0/critical at the deadline, got %d/%s", remaining, state)
	}

	remaining, state = SLARemaining(c, c.SLADeadline.Add(time.Second))
	if remaining != 0 || state != SLABreached {
		t.Fatalf("expected 0/breached past the deadline, got %d/%s", remaining, state)
	}
}
