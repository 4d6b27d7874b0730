package query

import (
	"math"
	"time"

	"github.com/triagedesk/backend/internal/models"
)

// Stats is the dashboard headline block.
type Stats struct {
	TotalToday         int     `json:"total_complaints_today"`
	Pending            int     `json:"pending_complaints"`
	Total              int     `json:"total_complaints"`
	AvgResponseHours   float64 `json:"average_response_time_hours"`
	SLAComplianceRate  float64 `json:"sla_compliance_rate"`
	RecentComplaints24 int     `json:"recent_complaints_24h"`
}

// ComputeStats derives the dashboard numbers from the snapshot. Response
// time is measured creation to last update on resolved complaints; SLA
// compliance is the share of resolved complaints updated before their
// deadline, 100 when nothing is resolved yet.
func ComputeStats(complaints []models.Complaint, now time.Time) Stats {
	stats := Stats{Total: len(complaints)}

	today := now.UTC().Format(dayFormat)
	cutoff24 := now.Add(-24 * time.Hour)

	var resolved, compliant int
	var responseHours float64
	for _, c := range complaints {
		if c.Timestamp.UTC().Format(dayFormat) == today {
			stats.TotalToday++
		}
		if c.Timestamp.After(cutoff24) {
			stats.RecentComplaints24++
		}
		if c.Status == models.StatusNew {
			stats.Pending++
		}
		if c.Status == models.StatusResolved {
			resolved++
			responseHours += c.UpdatedAt.Sub(c.Timestamp).Hours()
			if !c.UpdatedAt.After(c.SLADeadline) {
				compliant++
			}
		}
	}

	stats.SLAComplianceRate = 100
	if resolved > 0 {
		stats.AvgResponseHours = round1(responseHours / float64(resolved))
		stats.SLAComplianceRate = round1(float64(compliant) / float64(resolved) * 100)
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
