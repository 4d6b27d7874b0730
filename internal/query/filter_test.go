package query

import (
	"reflect"
	"testing"

	"github.com/triagedesk/backend/internal/models"
)

func fixtureComplaints() []models.Complaint {
	return []models.Complaint{
		{ID: "CMP00001", CustomerName: "Emma Smith", Subject: "Charged twice for subscription", Status: models.StatusNew, Priority: models.PriorityUrgent, Category: models.CategoryBilling},
		{ID: "CMP00002", CustomerName: "Liam Jones", Subject: "App crashes on upload", Status: models.StatusInProgress, Priority: models.PriorityHigh, Category: models.CategoryTechnical},
		{ID: "CMP00003", CustomerName: "Olivia Brown", Subject: "Package never arrived", Status: models.StatusResolved, Priority: models.PriorityMedium, Category: models.CategoryDelivery},
		{ID: "CMP00004", CustomerName: "Noah Garcia", Subject: "Refund still pending", Status: models.StatusEscalated, Priority: models.PriorityLow, Category: models.CategoryRefund},
	}
}

func TestFilterByStatus(t *testing.T) {
	got := Filter(fixtureComplaints(), Criteria{Status: "new"})
	if len(got) != 1 || got[0].ID != "CMP00001" {
		t.Fatalf("expected only CMP00001, got %+v", got)
	}
}

func TestFilterStatusAllIsNoFilter(t *testing.T) {
	if got := Filter(fixtureComplaints(), Criteria{Status: "all"}); len(got) != 4 {
		t.Fatalf("expected all 4, got %d", len(got))
	}
}

func TestFilterMultiPriorityIsOrMatch(t *testing.T) {
	got := Filter(fixtureComplaints(), Criteria{
		Priorities: []models.Priority{models.PriorityUrgent, models.PriorityLow},
	})
	if len(got) != 2 || got[0].ID != "CMP00001" || got[1].ID != "CMP00004" {
		t.Fatalf("expected CMP00001 and CMP00004, got %+v", got)
	}
}

func TestFilterSearchMatchesAnyOfThreeFields(t *testing.T) {
	cases := []struct {
		search string
		wantID string
	}{
		{"emma", "CMP00001"},        // customer name, case-insensitive
		{"crashes", "CMP00002"},     // subject
		{"cmp00003", "CMP00003"},    // id
	}
	for _, tc := range cases {
		got := Filter(fixtureComplaints(), Criteria{Search: tc.search})
		if len(got) != 1 || got[0].ID != tc.wantID {
			t.Fatalf("search %q: expected %s, got %+v", tc.search, tc.wantID, got)
		}
	}
}

func TestFilterPredicatesAndCombined(t *testing.T) {
	got := Filter(fixtureComplaints(), Criteria{
		Status:     "in_progress",
		Priorities: []models.Priority{models.PriorityHigh},
		Categories: []models.Category{models.CategoryTechnical},
		Search:     "upload",
	})
	if len(got) != 1 || got[0].ID != "CMP00002" {
		t.Fatalf("expected only CMP00002, got %+v", got)
	}

	// Flipping one predicate empties the result.
	got = Filter(fixtureComplaints(), Criteria{
		Status: "in_progress",
		Search: "refund",
	})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	crit := Criteria{Priorities: []models.Priority{models.PriorityUrgent, models.PriorityHigh}, Search: "c"}
	once := Filter(fixtureComplaints(), crit)
	twice := Filter(once, crit)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %+v vs %+v", once, twice)
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter(nil, Criteria{Status: "new"}); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}
