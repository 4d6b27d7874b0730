package query

import (
	"strings"

	"github.com/triagedesk/backend/internal/models"
)

// Criteria is the predicate set applied to a complaint list. Zero values
// mean "no filter"; Priorities and Categories are OR-matched within the
// field, all active fields are AND-combined.
type Criteria struct {
	Status     string
	Priorities []models.Priority
	Categories []models.Category
	Search     string
}

// Filter returns the subsequence of complaints matching every active
// predicate, preserving input order. It never mutates its input.
func Filter(complaints []models.Complaint, crit Criteria) []models.Complaint {
	search := strings.ToLower(strings.TrimSpace(crit.Search))
	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if crit.Status != "" && crit.Status != "all" && string(c.Status) != crit.Status {
			continue
		}
		if len(crit.Priorities) > 0 && !containsPriority(crit.Priorities, c.Priority) {
			continue
		}
		if len(crit.Categories) > 0 && !containsCategory(crit.Categories, c.Category) {
			continue
		}
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matchesSearch is a case-insensitive substring match over customer name,
// subject, and complaint id; any one field matching is enough.
func matchesSearch(c models.Complaint, search string) bool {
	return strings.Contains(strings.ToLower(c.CustomerName), search) ||
		strings.Contains(strings.ToLower(c.Subject), search) ||
		strings.Contains(strings.ToLower(c.ID), search)
}

func containsPriority(list []models.Priority, p models.Priority) bool {
	for _, v := range list {
		if v == p {
			return true
		}
	}
	return false
}

func containsCategory(list []models.Category, c models.Category) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}
