package sample

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/triagedesk/backend/internal/models"
)

// Weight tables for the four classified complaint attributes. Each list is
// aligned with the corresponding display-order slice in models and must sum
// to 1 so WeightedIndex covers the whole unit interval.
var (
	priorityWeights  = []float64{0.10, 0.25, 0.40, 0.25}
	categoryWeights  = []float64{0.30, 0.20, 0.15, 0.15, 0.10, 0.07, 0.03}
	sentimentWeights = []float64{0.20, 0.35, 0.30, 0.15}
	channelWeights   = []float64{0.60, 0.20, 0.05, 0.15}
)

const (
	subjectMaxLen      = 50
	creationWindowDays = 30
	activityWindowDays = 7
	activityPoolSize   = 50
)

// Generator produces the synthetic dataset. All randomness flows through a
// single seeded source so a fixed seed reproduces the same dataset.
type Generator struct {
	rng        *rand.Rand
	now        time.Time
	teams      []models.Team
	byCategory map[models.Category]string
	membersOf  map[string][]models.TeamMember
}

// NewGenerator builds a generator around the static team roster. Seed 0
// selects a time-based seed.
func NewGenerator(seed int64) (*Generator, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	teams := DefaultTeams()
	byCategory, err := CategoryIndex(teams)
	if err != nil {
		return nil, err
	}
	membersOf := make(map[string][]models.TeamMember, len(teams))
	for _, t := range teams {
		membersOf[t.ID] = t.Members
	}
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		now:        time.Now().UTC(),
		teams:      teams,
		byCategory: byCategory,
		membersOf:  membersOf,
	}, nil
}

// Teams returns a copy of the static roster so callers can attach derived
// metrics without touching the generator's internal state.
func (g *Generator) Teams() []models.Team {
	out := make([]models.Team, len(g.teams))
	copy(out, g.teams)
	return out
}

// TeamFor resolves the owning team for a category.
func (g *Generator) TeamFor(cat models.Category) string {
	return g.byCategory[cat]
}

// GenerateCustomers returns count customer records with sequential ids.
// Name collisions across records are fine; only ids are unique.
func (g *Generator) GenerateCustomers(count int) []models.Customer {
	customers := make([]models.Customer, 0, max(count, 0))
	for i := 0; i < count; i++ {
		first := firstNames[g.rng.Intn(len(firstNames))]
		last := lastNames[g.rng.Intn(len(lastNames))]
		name := first + " " + last
		domain := emailDomains[g.rng.Intn(len(emailDomains))]
		joined := g.now.Add(-time.Duration(g.rng.Float64() * 365 * 24 * float64(time.Hour)))
		customers = append(customers, models.Customer{
			ID:             i + 1,
			Name:           name,
			Email:          fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), i+1, domain),
			Phone:          fmt.Sprintf("+1-%03d-%03d-%04d", 200+g.rng.Intn(800), g.rng.Intn(1000), g.rng.Intn(10000)),
			JoinedAt:       joined,
			ComplaintCount: g.rng.Intn(15),
			Initials:       initials(name),
		})
	}
	return customers
}

// GenerateComplaints returns count complaints referencing the given
// customers, sorted newest first. An empty customer pool yields an empty
// result rather than an error.
func (g *Generator) GenerateComplaints(customers []models.Customer, count int) []models.Complaint {
	if len(customers) == 0 || count <= 0 {
		return []models.Complaint{}
	}

	complaints := make([]models.Complaint, 0, count)
	for i := 0; i < count; i++ {
		customer := customers[g.rng.Intn(len(customers))]
		category := models.CategoryOrder[WeightedIndex(g.rng, categoryWeights)]
		priority := models.PriorityOrder[WeightedIndex(g.rng, priorityWeights)]
		sentiment := models.SentimentOrder[WeightedIndex(g.rng, sentimentWeights)]
		channel := models.ChannelOrder[WeightedIndex(g.rng, channelWeights)]
		status := statusForIndex(i, count)
		teamID := g.byCategory[category]

		pool := descriptionPools[category]
		description := pool[g.rng.Intn(len(pool))]

		// Squared uniform skews creation times toward the present.
		u := g.rng.Float64()
		created := g.now.Add(-time.Duration(u * u * creationWindowDays * 24 * float64(time.Hour)))
		updated := created.Add(time.Duration(g.rng.Float64() * float64(g.now.Sub(created))))

		c := models.Complaint{
			ID:            fmt.Sprintf("CMP%05d", i+1),
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			Subject:       truncateSubject(description),
			Description:   description,
			Category:      category,
			Priority:      priority,
			Sentiment:     sentiment,
			Status:        status,
			Channel:       channel,
			TeamID:        teamID,
			Timestamp:     created,
			UpdatedAt:     updated,
			SLADeadline:   created.Add(priority.SLAOffset()),
			AIConfidence:  75 + g.rng.Float64()*25,
		}

		if status != models.StatusNew {
			members := g.membersOf[teamID]
			c.AssignedTo = members[g.rng.Intn(len(members))].ID
		}
		if g.rng.Float64() < 0.5 {
			c.Entities = g.pickEntities()
		}
		if g.rng.Float64() < 0.2 {
			c.Attachments = []string{attachmentPool[g.rng.Intn(len(attachmentPool))]}
		}

		complaints = append(complaints, c)
	}

	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].Timestamp.After(complaints[j].Timestamp)
	})
	return complaints
}

// GenerateActivityEvents returns count feed events referencing only the
// first min(50, n) complaints, newest first.
func (g *Generator) GenerateActivityEvents(complaints []models.Complaint, count int) []models.ActivityEvent {
	if len(complaints) == 0 || count <= 0 {
		return []models.ActivityEvent{}
	}

	poolSize := min(activityPoolSize, len(complaints))
	events := make([]models.ActivityEvent, 0, count)
	for i := 0; i < count; i++ {
		c := complaints[g.rng.Intn(poolSize)]
		tmpl := eventTemplates[g.rng.Intn(len(eventTemplates))]
		ts := g.now.Add(-time.Duration(g.rng.Float64() * activityWindowDays * 24 * float64(time.Hour)))
		events = append(events, models.ActivityEvent{
			ID:          uuid.NewString(),
			Type:        tmpl.Type,
			Description: fmt.Sprintf(tmpl.Description, c.Category),
			Timestamp:   ts,
			ComplaintID: c.ID,
			Icon:        tmpl.Icon,
			Color:       tmpl.Color,
		})
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

// statusForIndex assigns status by generation index: the first 15% of the
// run is new, the next 20% in progress, the next 55% resolved, the rest
// escalated. The proportions hold in aggregate, not per draw, and because
// the run is later sorted by timestamp the status ends up uncorrelated with
// display order.
func statusForIndex(i, count int) models.Status {
	switch {
	case float64(i) < float64(count)*0.15:
		return models.StatusNew
	case float64(i) < float64(count)*0.35:
		return models.StatusInProgress
	case float64(i) < float64(count)*0.90:
		return models.StatusResolved
	default:
		return models.StatusEscalated
	}
}

func (g *Generator) pickEntities() map[string]string {
	keys := []string{"order_number", "product_name", "amount", "account_number"}
	n := 1 + g.rng.Intn(2)
	out := make(map[string]string, n)
	for i := 0; i < n; i++ {
		key := keys[g.rng.Intn(len(keys))]
		values := entityPool[key]
		out[key] = values[g.rng.Intn(len(values))]
	}
	return out
}

func truncateSubject(description string) string {
	runes := []rune(description)
	if len(runes) <= subjectMaxLen {
		return description
	}
	return string(runes[:subjectMaxLen]) + "..."
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteRune([]rune(part)[0])
		if b.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}
