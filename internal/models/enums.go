package models

import "time"

type Category string

const (
	CategoryBilling      Category = "billing"
	CategoryTechnical    Category = "technical"
	CategoryDelivery     Category = "delivery"
	CategoryRefund       Category = "refund"
	CategoryCustomerCare Category = "customer_care"
	CategoryProduct      Category = "product"
	CategoryAccount      Category = "account"
)

// CategoryOrder is the display order used by aggregations and charts.
var CategoryOrder = []Category{
	CategoryBilling,
	CategoryTechnical,
	CategoryDelivery,
	CategoryRefund,
	CategoryCustomerCare,
	CategoryProduct,
	CategoryAccount,
}

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var PriorityOrder = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

// SLAOffset returns the resolution window granted to a complaint of the
// given priority, counted from its creation timestamp.
func (p Priority) SLAOffset() time.Duration {
	switch p {
	case PriorityUrgent:
		return 4 * time.Hour
	case PriorityHigh:
		return 8 * time.Hour
	case PriorityMedium:
		return 24 * time.Hour
	default:
		return 48 * time.Hour
	}
}

// Color returns the chart color for a priority slice.
func (p Priority) Color() string {
	switch p {
	case PriorityUrgent:
		return "#dc3545"
	case PriorityHigh:
		return "#fd7e14"
	case PriorityMedium:
		return "#ffc107"
	default:
		return "#28a745"
	}
}

type Sentiment string

const (
	SentimentAngry      Sentiment = "angry"
	SentimentFrustrated Sentiment = "frustrated"
	SentimentNeutral    Sentiment = "neutral"
	SentimentSatisfied  Sentiment = "satisfied"
)

var SentimentOrder = []Sentiment{SentimentAngry, SentimentFrustrated, SentimentNeutral, SentimentSatisfied}

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusEscalated  Status = "escalated"
)

var StatusOrder = []Status{StatusNew, StatusInProgress, StatusResolved, StatusEscalated}

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelChat  Channel = "chat"
	ChannelPhone Channel = "phone"
	ChannelWeb   Channel = "web"
)

var ChannelOrder = []Channel{ChannelEmail, ChannelChat, ChannelPhone, ChannelWeb}
