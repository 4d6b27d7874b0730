package sample

import (
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/triagedesk/backend/internal/models"
)

// Classification is the triage verdict for an incoming complaint.
type Classification struct {
	Category   models.Category
	Priority   models.Priority
	Sentiment  models.Sentiment
	Entities   map[string]string
	Confidence float64
}

// Keyword tables for the stub classifier. First category with a hit wins;
// text with no hits anywhere falls through to a weighted draw so intake
// traffic still follows the configured distributions.
var categoryKeywords = []struct {
	category models.Category
	words    []string
}{
	{models.CategoryBilling, []string{"bill", "charge", "payment", "invoice", "subscription", "fee"}},
	{models.CategoryRefund, []string{"refund", "return", "money back", "reimburse"}},
	{models.CategoryDelivery, []string{"delivery", "shipping", "shipment", "package", "courier", "tracking"}},
	{models.CategoryTechnical, []string{"crash", "bug", "error", "login", "password", "technical", "api"}},
	{models.CategoryProduct, []string{"defective", "broken", "malfunction", "quality", "damaged"}},
	{models.CategoryAccount, []string{"account", "profile", "settings", "locked"}},
}

var (
	urgentWords    = []string{"immediately", "unacceptable", "lawyer", "legal", "fraud", "urgent"}
	highWords      = []string{"broken", "not working", "asap", "locked out", "stuck"}
	lowWords       = []string{"question", "info", "how to", "wondering"}
	angryWords     = []string{"furious", "unacceptable", "terrible", "outraged", "angry"}
	frustratedWords = []string{"frustrated", "disappointed", "annoying", "again", "still"}
	satisfiedWords = []string{"thank", "great", "happy", "satisfied"}
)

var (
	orderNumberPattern = regexp.MustCompile(`(?i)(?:order|ref)\s*#?\s*:?\s*([A-Z]{2,4}-?\d{4,})`)
	amountPattern      = regexp.MustCompile(`\$\d+(?:\.\d{2})?`)
)

// Classifier assigns category, priority and sentiment to free-text
// complaints. It matches keywords first and falls back to a weighted draw
// when the text matches nothing, so it never refuses an input.
type Classifier struct {
	rng *rand.Rand
}

// NewClassifier builds a classifier. Seed 0 selects a time-based seed.
func NewClassifier(seed int64) *Classifier {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Classifier{rng: rand.New(rand.NewSource(seed))}
}

func (cl *Classifier) Classify(subject, description string) Classification {
	text := strings.ToLower(subject + " " + description)

	out := Classification{
		Category:   cl.classifyCategory(text),
		Priority:   cl.classifyPriority(text),
		Sentiment:  cl.classifySentiment(text),
		Entities:   extractEntities(subject + " " + description),
		Confidence: 75 + cl.rng.Float64()*25,
	}
	return out
}

func (cl *Classifier) classifyCategory(text string) models.Category {
	for _, entry := range categoryKeywords {
		if containsAny(text, entry.words) {
			return entry.category
		}
	}
	return models.CategoryOrder[WeightedIndex(cl.rng, categoryWeights)]
}

func (cl *Classifier) classifyPriority(text string) models.Priority {
	switch {
	case containsAny(text, urgentWords):
		return models.PriorityUrgent
	case containsAny(text, highWords):
		return models.PriorityHigh
	case containsAny(text, lowWords):
		return models.PriorityLow
	default:
		return models.PriorityMedium
	}
}

func (cl *Classifier) classifySentiment(text string) models.Sentiment {
	switch {
	case containsAny(text, angryWords):
		return models.SentimentAngry
	case containsAny(text, frustratedWords):
		return models.SentimentFrustrated
	case containsAny(text, satisfiedWords):
		return models.SentimentSatisfied
	default:
		return models.SentimentNeutral
	}
}

func extractEntities(text string) map[string]string {
	entities := map[string]string{}
	if m := orderNumberPattern.FindStringSubmatch(text); m != nil {
		entities["order_number"] = m[1]
	}
	if m := amountPattern.FindString(text); m != "" {
		entities["amount"] = m
	}
	if len(entities) == 0 {
		return nil
	}
	return entities
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
