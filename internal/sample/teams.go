package sample

import (
	"fmt"

	"github.com/triagedesk/backend/internal/models"
)

// DefaultTeams returns the static team roster. Every category is handled by
// exactly one team; CategoryIndex enforces that the mapping stays a total,
// non-overlapping partition when someone edits this table.
func DefaultTeams() []models.Team {
	return []models.Team{
		{
			ID:    "billing",
			Name:  "Billing Team",
			Icon:  "credit-card",
			Color: "#6366f1",
			Email: "billing@triagedesk.io",
			Members: []models.TeamMember{
				{ID: "billing-1", Name: "Sarah Mitchell", Role: "Team Lead", Initials: "SM"},
				{ID: "billing-2", Name: "James Okafor", Role: "Specialist", Initials: "JO"},
				{ID: "billing-3", Name: "Priya Raman", Role: "Specialist", Initials: "PR"},
				{ID: "billing-4", Name: "Tom Keller", Role: "Analyst", Initials: "TK"},
			},
			Categories:         []models.Category{models.CategoryBilling, models.CategoryRefund},
			AvgResponseMinutes: 42,
			ResolutionRate:     91.5,
		},
		{
			ID:    "technical",
			Name:  "Technical Team",
			Icon:  "wrench",
			Color: "#0ea5e9",
			Email: "tech@triagedesk.io",
			Members: []models.TeamMember{
				{ID: "technical-1", Name: "Elena Vasquez", Role: "Team Lead", Initials: "EV"},
				{ID: "technical-2", Name: "Marcus Chen", Role: "Engineer", Initials: "MC"},
				{ID: "technical-3", Name: "Dmitri Volkov", Role: "Engineer", Initials: "DV"},
			},
			Categories:         []models.Category{models.CategoryTechnical, models.CategoryProduct},
			AvgResponseMinutes: 65,
			ResolutionRate:     87.2,
		},
		{
			ID:    "delivery",
			Name:  "Delivery Team",
			Icon:  "truck",
			Color: "#f59e0b",
			Email: "delivery@triagedesk.io",
			Members: []models.TeamMember{
				{ID: "delivery-1", Name: "Hannah Brooks", Role: "Team Lead", Initials: "HB"},
				{ID: "delivery-2", Name: "Luis Herrera", Role: "Coordinator", Initials: "LH"},
				{ID: "delivery-3", Name: "Aisha Diallo", Role: "Coordinator", Initials: "AD"},
			},
			Categories:         []models.Category{models.CategoryDelivery},
			AvgResponseMinutes: 58,
			ResolutionRate:     89.8,
		},
		{
			ID:    "account",
			Name:  "Account Team",
			Icon:  "user",
			Color: "#8b5cf6",
			Email: "accounts@triagedesk.io",
			Members: []models.TeamMember{
				{ID: "account-1", Name: "Robert Lang", Role: "Team Lead", Initials: "RL"},
				{ID: "account-2", Name: "Mei Tanaka", Role: "Specialist", Initials: "MT"},
				{ID: "account-3", Name: "Omar Haddad", Role: "Specialist", Initials: "OH"},
			},
			Categories:         []models.Category{models.CategoryAccount},
			AvgResponseMinutes: 37,
			ResolutionRate:     93.1,
		},
		{
			ID:    "customer_care",
			Name:  "Customer Care Team",
			Icon:  "heart",
			Color: "#ec4899",
			Email: "care@triagedesk.io",
			Members: []models.TeamMember{
				{ID: "customer_care-1", Name: "Grace Nwosu", Role: "Team Lead", Initials: "GN"},
				{ID: "customer_care-2", Name: "Petra Novak", Role: "Agent", Initials: "PN"},
				{ID: "customer_care-3", Name: "Sam Whitfield", Role: "Agent", Initials: "SW"},
				{ID: "customer_care-4", Name: "Ines Moreau", Role: "Agent", Initials: "IM"},
			},
			Categories:         []models.Category{models.CategoryCustomerCare},
			AvgResponseMinutes: 49,
			ResolutionRate:     90.4,
		},
	}
}

// CategoryIndex builds the category-to-team mapping from a team roster and
// verifies the partition is total over CategoryOrder and non-overlapping.
func CategoryIndex(teams []models.Team) (map[models.Category]string, error) {
	index := make(map[models.Category]string, len(models.CategoryOrder))
	for _, team := range teams {
		if len(team.Categories) == 0 {
			return nil, fmt.Errorf("team %s handles no categories", team.ID)
		}
		for _, cat := range team.Categories {
			if owner, ok := index[cat]; ok {
				return nil, fmt.Errorf("category %s owned by both %s and %s", cat, owner, team.ID)
			}
			index[cat] = team.ID
		}
	}
	for _, cat := range models.CategoryOrder {
		if _, ok := index[cat]; !ok {
			return nil, fmt.Errorf("category %s has no owning team", cat)
		}
	}
	return index, nil
}
