package sample

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/triagedesk/backend/internal/models"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	gen, err := NewGenerator(42)
	require.NoError(t, err)
	return gen
}

func TestGenerateCustomers(t *testing.T) {
	gen := newTestGenerator(t)
	customers := gen.GenerateCustomers(50)
	require.Len(t, customers, 50)

	yearAgo := time.Now().UTC().Add(-366 * 24 * time.Hour)
	for i, c := range customers {
		require.Equal(t, i+1, c.ID)
		require.NotEmpty(t, c.Name)
		require.Contains(t, c.Email, "@")
		require.True(t, c.JoinedAt.After(yearAgo), "join date older than a year: %s", c.JoinedAt)
		require.Len(t, c.Initials, 2)
	}
}

func TestGenerateCustomersZeroCount(t *testing.T) {
	gen := newTestGenerator(t)
	require.Empty(t, gen.GenerateCustomers(0))
	require.Empty(t, gen.GenerateCustomers(-5))
}

func TestGenerateComplaintsCountAndIDs(t *testing.T) {
	gen := newTestGenerator(t)
	customers := gen.GenerateCustomers(10)
	complaints := gen.GenerateComplaints(customers, 120)
	require.Len(t, complaints, 120)

	idPattern := regexp.MustCompile(`^CMP\d{5}$`)
	seen := map[string]bool{}
	for _, c := range complaints {
		require.Regexp(t, idPattern, c.ID)
		require.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestGenerateComplaintsDegradesGracefully(t *testing.T) {
	gen := newTestGenerator(t)
	require.Empty(t, gen.GenerateComplaints(nil, 10))
	require.Empty(t, gen.GenerateComplaints(gen.GenerateCustomers(5), 0))
	require.Empty(t, gen.GenerateComplaints(gen.GenerateCustomers(5), -1))
}

func TestComplaintSLADeadlines(t *testing.T) {
	gen := newTestGenerator(t)
	complaints := gen.GenerateComplaints(gen.GenerateCustomers(20), 200)

	offsets := map[models.Priority]time.Duration{
		models.PriorityUrgent: 4 * time.Hour,
		models.PriorityHigh:   8 * time.Hour,
		models.PriorityMedium: 24 * time.Hour,
		models.PriorityLow:    48 * time.Hour,
	}
	for _, c := range complaints {
		require.Equal(t, offsets[c.Priority], c.SLADeadline.Sub(c.Timestamp),
			"complaint %s priority %s", c.ID, c.Priority)
	}
}

func TestComplaintAssignmentInvariant(t *testing.T) {
	gen := newTestGenerator(t)
	complaints := gen.GenerateComplaints(gen.GenerateCustomers(20), 200)

	membersByTeam := map[string]map[string]bool{}
	for _, team := range gen.Teams() {
		set := map[string]bool{}
		for _, m := range team.Members {
			set[m.ID] = true
		}
		membersByTeam[team.ID] = set
	}

	for _, c := range complaints {
		if c.Status == models.StatusNew {
			require.Empty(t, c.AssignedTo, "new complaint %s should be unassigned", c.ID)
			continue
		}
		require.NotEmpty(t, c.AssignedTo, "complaint %s with status %s should be assigned", c.ID, c.Status)
		require.True(t, membersByTeam[c.TeamID][c.AssignedTo],
			"assignee %s not in team %s", c.AssignedTo, c.TeamID)
	}
}

func TestComplaintTeamRouting(t *testing.T) {
	gen := newTestGenerator(t)
	complaints := gen.GenerateComplaints(gen.GenerateCustomers(20), 200)

	for _, c := range complaints {
		require.Equal(t, gen.TeamFor(c.Category), c.TeamID, "complaint %s category %s", c.ID, c.Category)
	}
}

func TestComplaintUpdatedAtNotBeforeCreation(t *testing.T) {
	gen := newTestGenerator(t)
	for _, c := range gen.GenerateComplaints(gen.GenerateCustomers(20), 200) {
		require.False(t, c.UpdatedAt.Before(c.Timestamp), "complaint %s updated before created", c.ID)
	}
}

func TestComplaintsSortedNewestFirst(t *testing.T) {
	gen := newTestGenerator(t)
	complaints := gen.GenerateComplaints(gen.GenerateCustomers(20), 200)
	for i := 1; i < len(complaints); i++ {
		require.False(t, complaints[i].Timestamp.After(complaints[i-1].Timestamp),
			"complaints not sorted descending at index %d", i)
	}
}

func TestStatusProportionsByIndex(t *testing.T) {
	gen := newTestGenerator(t)
	complaints := gen.GenerateComplaints(gen.GenerateCustomers(20), 1000)

	counts := map[models.Status]int{}
	for _, c := range complaints {
		counts[c.Status]++
	}
	require.Equal(t, 150, counts[models.StatusNew])
	require.Equal(t, 200, counts[models.StatusInProgress])
	require.Equal(t, 550, counts[models.StatusResolved])
	require.Equal(t, 100, counts[models.StatusEscalated])
}

func TestSubjectTruncation(t *testing.T) {
	gen := newTestGenerator(t)
	for _, c := range gen.GenerateComplaints(gen.GenerateCustomers(20), 200) {
		if len([]rune(c.Description)) > 50 {
			require.Equal(t, truncateSubject(c.Description), c.Subject)
			require.True(t, strings.HasSuffix(c.Subject, "..."))
			require.Len(t, []rune(c.Subject), 53)
		} else {
			require.Equal(t, c.Description, c.Subject)
		}
	}
}

func TestComplaintConfidenceRange(t *testing.T) {
	gen := newTestGenerator(t)
	for _, c := range gen.GenerateComplaints(gen.GenerateCustomers(20), 200) {
		require.GreaterOrEqual(t, c.AIConfidence, 75.0)
		require.LessOrEqual(t, c.AIConfidence, 100.0)
	}
}

// Over a large run each weighted attribute converges to its configured
// distribution within 3 percentage points.
func TestWeightedDistributionsConverge(t *testing.T) {
	gen := newTestGenerator(t)
	const n = 10000
	complaints := gen.GenerateComplaints(gen.GenerateCustomers(100), n)

	categoryCounts := map[models.Category]int{}
	priorityCounts := map[models.Priority]int{}
	sentimentCounts := map[models.Sentiment]int{}
	channelCounts := map[models.Channel]int{}
	for _, c := range complaints {
		categoryCounts[c.Category]++
		priorityCounts[c.Priority]++
		sentimentCounts[c.Sentiment]++
		channelCounts[c.Channel]++
	}

	const tolerance = 0.03
	for i, cat := range models.CategoryOrder {
		require.InDelta(t, categoryWeights[i], float64(categoryCounts[cat])/n, tolerance, "category %s", cat)
	}
	for i, p := range models.PriorityOrder {
		require.InDelta(t, priorityWeights[i], float64(priorityCounts[p])/n, tolerance, "priority %s", p)
	}
	for i, s := range models.SentimentOrder {
		require.InDelta(t, sentimentWeights[i], float64(sentimentCounts[s])/n, tolerance, "sentiment %s", s)
	}
	for i, ch := range models.ChannelOrder {
		require.InDelta(t, channelWeights[i], float64(channelCounts[ch])/n, tolerance, "channel %s", ch)
	}

	// Billing dominates and account trails, per the configured weights.
	for cat, count := range categoryCounts {
		if cat != models.CategoryBilling {
			require.Greater(t, categoryCounts[models.CategoryBilling], count, "billing should outnumber %s", cat)
		}
		if cat != models.CategoryAccount {
			require.Less(t, categoryCounts[models.CategoryAccount], count, "account should trail %s", cat)
		}
	}
}

func TestGenerateActivityEvents(t *testing.T) {
	gen := newTestGenerator(t)
	complaints := gen.GenerateComplaints(gen.GenerateCustomers(20), 200)
	events := gen.GenerateActivityEvents(complaints, 40)
	require.Len(t, events, 40)

	recent := map[string]bool{}
	for _, c := range complaints[:50] {
		recent[c.ID] = true
	}

	weekAgo := time.Now().UTC().Add(-8 * 24 * time.Hour)
	for i, e := range events {
		require.NotEmpty(t, e.ID)
		require.True(t, recent[e.ComplaintID], "event references complaint %s outside the recent pool", e.ComplaintID)
		require.True(t, e.Timestamp.After(weekAgo))
		if i > 0 {
			require.False(t, e.Timestamp.After(events[i-1].Timestamp), "events not sorted descending at %d", i)
		}
	}
}

func TestGenerateActivityEventsSmallPool(t *testing.T) {
	gen := newTestGenerator(t)
	complaints := gen.GenerateComplaints(gen.GenerateCustomers(5), 3)
	events := gen.GenerateActivityEvents(complaints, 10)
	require.Len(t, events, 10)
	for _, e := range events {
		require.Contains(t, []string{complaints[0].ID, complaints[1].ID, complaints[2].ID}, e.ComplaintID)
	}
}

func TestGenerateActivityEventsDegradesGracefully(t *testing.T) {
	gen := newTestGenerator(t)
	require.Empty(t, gen.GenerateActivityEvents(nil, 10))
	complaints := gen.GenerateComplaints(gen.GenerateCustomers(5), 5)
	require.Empty(t, gen.GenerateActivityEvents(complaints, 0))
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	genA, err := NewGenerator(7)
	require.NoError(t, err)
	genB, err := NewGenerator(7)
	require.NoError(t, err)

	a := genA.GenerateComplaints(genA.GenerateCustomers(10), 50)
	b := genB.GenerateComplaints(genB.GenerateCustomers(10), 50)
	require.Len(t, b, len(a))
	for i := range a {
		require.Equal(t, a[i].ID, b[i].ID)
		require.Equal(t, a[i].Category, b[i].Category)
		require.Equal(t, a[i].Priority, b[i].Priority)
		require.Equal(t, a[i].Sentiment, b[i].Sentiment)
		require.Equal(t, a[i].Channel, b[i].Channel)
		require.Equal(t, a[i].Status, b[i].Status)
	}
}
