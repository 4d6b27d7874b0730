package models

import "time"

type Customer struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	JoinedAt       time.Time `json:"joined_at"`
	ComplaintCount int       `json:"complaint_count"`
	Initials       string    `json:"initials"`
}

type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}

type Team struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Icon               string       `json:"icon"`
	Color              string       `json:"color"`
	Email              string       `json:"email"`
	Members            []TeamMember `json:"members"`
	Categories         []Category   `json:"categories"`
	ActiveComplaints   int          `json:"active_complaints"`
	AvgResponseMinutes int          `json:"avg_response_minutes"`
	ResolutionRate     float64      `json:"resolution_rate"`
}

// HasMember reports whether the given team member id is on this roster.
func (t Team) HasMember(id string) bool {
	for _, m := range t.Members {
		if m.ID == id {
			return true
		}
	}
	return false
}

type Complaint struct {
	ID            string            `json:"id"`
	CustomerID    int               `json:"customer_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	Subject       string            `json:"subject"`
	Description   string            `json:"description"`
	Category      Category          `json:"category"`
	Priority      Priority          `json:"priority"`
	Sentiment     Sentiment         `json:"sentiment"`
	Status        Status            `json:"status"`
	Channel       Channel           `json:"channel"`
	TeamID        string            `json:"team_id"`
	AssignedTo    string            `json:"assigned_to,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
	UpdatedAt     time.Time         `json:"updated_at"`
	SLADeadline   time.Time         `json:"sla_deadline"`
	AIConfidence  float64           `json:"ai_confidence"`
	Attachments   []string          `json:"attachments,omitempty"`
	Entities      map[string]string `json:"entities,omitempty"`
}

type ActivityEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	ComplaintID string    `json:"complaint_id,omitempty"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
}

const (
	EventClassified   = "classified"
	EventAssigned     = "assigned"
	EventStatusChange = "status_change"
	EventEscalated    = "escalated"
	EventResolved     = "resolved"
	EventComment      = "comment"
)
