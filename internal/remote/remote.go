// Package remote fetches a complaint dataset from an upstream triage API.
// The contract is JSON over HTTP with a {success, data, message?} envelope;
// a non-2xx status or success=false is a normalized error and callers fall
// back to the locally generated snapshot. One attempt, no retry.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/triagedesk/backend/internal/models"
)

// Dataset is everything a snapshot needs, as served by the upstream API.
type Dataset struct {
	Teams      []models.Team
	Complaints []models.Complaint
	Events     []models.ActivityEvent
}

// Source is anything that can produce a full dataset.
type Source interface {
	FetchDataset(ctx context.Context) (*Dataset, error)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type complaintList struct {
	Complaints []models.Complaint `json:"complaints"`
	Total      int                `json:"total"`
}

func (c Client) FetchDataset(ctx context.Context) (*Dataset, error) {
	var list complaintList
	if err := c.getJSON(ctx, "/api/complaints?page=1&limit=1000", &list); err != nil {
		return nil, fmt.Errorf("fetch complaints: %w", err)
	}

	var teams []models.Team
	if err := c.getJSON(ctx, "/api/teams", &teams); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	var events []models.ActivityEvent
	if err := c.getJSON(ctx, "/api/dashboard/activity", &events); err != nil {
		return nil, fmt.Errorf("fetch activity: %w", err)
	}

	return &Dataset{
		Teams:      teams,
		Complaints: list.Complaints,
		Events:     events,
	}, nil
}

// Customers reconstructs the customer list from the denormalized snapshots
// carried on each complaint; the upstream API exposes no customer listing.
func (d *Dataset) Customers() []models.Customer {
	seen := map[int]bool{}
	out := make([]models.Customer, 0)
	for _, c := range d.Complaints {
		if c.CustomerID == 0 || seen[c.CustomerID] {
			continue
		}
		seen[c.CustomerID] = true
		out = append(out, models.Customer{
			ID:    c.CustomerID,
			Name:  c.CustomerName,
			Email: c.CustomerEmail,
		})
	}
	return out
}

func (c Client) getJSON(ctx context.Context, path string, out any) error {
	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = "upstream reported failure"
		}
		return fmt.Errorf("upstream error: %s", msg)
	}
	return json.Unmarshal(env.Data, out)
}
