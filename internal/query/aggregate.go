package query

import (
	"sort"
	"time"

	"github.com/triagedesk/backend/internal/models"
)

const dayFormat = "2006-01-02"

// Count is one bucket of an aggregation.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// countBy groups complaints by a classification key, emitting buckets in
// the caller-supplied display order. Keys absent from the data still appear
// with a zero count so charts keep stable axes.
func countBy[K comparable](complaints []models.Complaint, order []K, key func(models.Complaint) K, label func(K) string) []Count {
	counts := make(map[K]int, len(order))
	for _, c := range complaints {
		counts[key(c)]++
	}
	out := make([]Count, 0, len(order))
	for _, k := range order {
		out = append(out, Count{Key: label(k), Count: counts[k]})
	}
	return out
}

func CountByPriority(complaints []models.Complaint) []Count {
	return countBy(complaints, models.PriorityOrder,
		func(c models.Complaint) models.Priority { return c.Priority },
		func(p models.Priority) string { return string(p) })
}

func CountByCategory(complaints []models.Complaint) []Count {
	return countBy(complaints, models.CategoryOrder,
		func(c models.Complaint) models.Category { return c.Category },
		func(k models.Category) string { return string(k) })
}

func CountBySentiment(complaints []models.Complaint) []Count {
	return countBy(complaints, models.SentimentOrder,
		func(c models.Complaint) models.Sentiment { return c.Sentiment },
		func(s models.Sentiment) string { return string(s) })
}

func CountByStatus(complaints []models.Complaint) []Count {
	return countBy(complaints, models.StatusOrder,
		func(c models.Complaint) models.Status { return c.Status },
		func(s models.Status) string { return string(s) })
}

// CountByTeam groups by owning team id in the order teams are defined.
func CountByTeam(complaints []models.Complaint, teams []models.Team) []Count {
	order := make([]string, 0, len(teams))
	for _, t := range teams {
		order = append(order, t.ID)
	}
	return countBy(complaints, order,
		func(c models.Complaint) string { return c.TeamID },
		func(id string) string { return id })
}

// CountByDay groups by calendar day (UTC), chronologically.
func CountByDay(complaints []models.Complaint) []Count {
	counts := map[string]int{}
	for _, c := range complaints {
		counts[c.Timestamp.UTC().Format(dayFormat)]++
	}
	out := make([]Count, 0, len(counts))
	for day, n := range counts {
		out = append(out, Count{Key: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// TrendBucket is one day of the priority-broken trend series.
type TrendBucket struct {
	Date   string `json:"date"`
	Total  int    `json:"total"`
	Urgent int    `json:"urgent"`
	High   int    `json:"high"`
	Medium int    `json:"medium"`
	Low    int    `json:"low"`
}

// Trend produces days daily buckets oldest to newest, ending on now's
// calendar date. A complaint lands in a bucket when its timestamp's UTC
// calendar date equals the bucket's date; this is an exact day match, not a
// rolling 24h window.
func Trend(complaints []models.Complaint, days int, now time.Time) []TrendBucket {
	if days <= 0 {
		return []TrendBucket{}
	}

	buckets := make([]TrendBucket, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := now.UTC().AddDate(0, 0, -(days - 1 - i)).Format(dayFormat)
		buckets[i] = TrendBucket{Date: date}
		index[date] = i
	}

	for _, c := range complaints {
		i, ok := index[c.Timestamp.UTC().Format(dayFormat)]
		if !ok {
			continue
		}
		buckets[i].Total++
		switch c.Priority {
		case models.PriorityUrgent:
			buckets[i].Urgent++
		case models.PriorityHigh:
			buckets[i].High++
		case models.PriorityMedium:
			buckets[i].Medium++
		case models.PriorityLow:
			buckets[i].Low++
		}
	}
	return buckets
}

// WithinDays returns complaints whose timestamp falls in the n calendar
// days (UTC) ending on now's date.
func WithinDays(complaints []models.Complaint, n int, now time.Time) []models.Complaint {
	if n <= 0 {
		return []models.Complaint{}
	}
	first := now.UTC().AddDate(0, 0, -(n - 1)).Format(dayFormat)
	last := now.UTC().Format(dayFormat)
	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		day := c.Timestamp.UTC().Format(dayFormat)
		if day >= first && day <= last {
			out = append(out, c)
		}
	}
	return out
}
