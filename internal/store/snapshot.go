package store

import (
	"github.com/rs/zerolog"

	"github.com/triagedesk/backend/internal/models"
	"github.com/triagedesk/backend/internal/sample"
)

// Snapshot is the immutable dataset every projection reads from. It is
// built once at startup; nothing in the process mutates it afterwards, so
// concurrent readers need no coordination.
type Snapshot struct {
	Customers  []models.Customer
	Teams      []models.Team
	Complaints []models.Complaint
	Events     []models.ActivityEvent
}

// Options controls dataset sizes and the random seed.
type Options struct {
	Seed           int64
	CustomerCount  int
	ComplaintCount int
	ActivityCount  int
}

// Build generates a fresh snapshot and back-fills each team's active
// complaint count.
func Build(opts Options, logger zerolog.Logger) (*Snapshot, error) {
	gen, err := sample.NewGenerator(opts.Seed)
	if err != nil {
		return nil, err
	}

	customers := gen.GenerateCustomers(opts.CustomerCount)
	complaints := gen.GenerateComplaints(customers, opts.ComplaintCount)
	events := gen.GenerateActivityEvents(complaints, opts.ActivityCount)
	teams := RecomputeActiveComplaints(gen.Teams(), complaints)

	logger.Info().
		Int("customers", len(customers)).
		Int("complaints", len(complaints)).
		Int("events", len(events)).
		Int64("seed", opts.Seed).
		Msg("sample dataset generated")

	return &Snapshot{
		Customers:  customers,
		Teams:      teams,
		Complaints: complaints,
		Events:     events,
	}, nil
}

// FromRemote wraps an externally fetched dataset in a snapshot, recomputing
// the derived team counters so they cannot drift from the complaint list.
func FromRemote(customers []models.Customer, teams []models.Team, complaints []models.Complaint, events []models.ActivityEvent) *Snapshot {
	return &Snapshot{
		Customers:  customers,
		Teams:      RecomputeActiveComplaints(teams, complaints),
		Complaints: complaints,
		Events:     events,
	}
}

// RecomputeActiveComplaints derives each team's active count (complaints
// owned by the team whose status is not resolved). It is a projection over
// the complaint list, not a stored counter.
func RecomputeActiveComplaints(teams []models.Team, complaints []models.Complaint) []models.Team {
	counts := map[string]int{}
	for _, c := range complaints {
		if c.Status != models.StatusResolved {
			counts[c.TeamID]++
		}
	}
	out := make([]models.Team, len(teams))
	copy(out, teams)
	for i := range out {
		out[i].ActiveComplaints = counts[out[i].ID]
	}
	return out
}

// Complaint looks up a complaint by id.
func (s *Snapshot) Complaint(id string) (models.Complaint, bool) {
	for _, c := range s.Complaints {
		if c.ID == id {
			return c, true
		}
	}
	return models.Complaint{}, false
}

// Team looks up a team by id.
func (s *Snapshot) Team(id string) (models.Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return models.Team{}, false
}

// TeamForCategory resolves the team owning a category.
func (s *Snapshot) TeamForCategory(cat models.Category) (models.Team, bool) {
	for _, t := range s.Teams {
		for _, c := range t.Categories {
			if c == cat {
				return t, true
			}
		}
	}
	return models.Team{}, false
}
