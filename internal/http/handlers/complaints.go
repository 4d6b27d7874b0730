package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/triagedesk/backend/internal/models"
	"github.com/triagedesk/backend/internal/query"
)

type timelineEntry struct {
	Timestamp   string `json:"timestamp"`
	Action      string `json:"action"`
	Description string `json:"description"`
	User        string `json:"user"`
}

type complaintDetail struct {
	models.Complaint
	SLARemainingMinutes int             `json:"sla_remaining_minutes"`
	SLAState            query.SLAState  `json:"sla_state"`
	Team                models.Team     `json:"team"`
	ActivityTimeline    []timelineEntry `json:"activity_timeline"`
}

// @Summary List complaints
// @Description Filtered, paginated complaint listing
// @Tags complaints
// @Produce json
// @Param status query string false "Status filter (all for none)"
// @Param priority query string false "Comma-separated priorities"
// @Param category query string false "Comma-separated categories"
// @Param search query string false "Free-text search"
// @Param page query int false "1-based page"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]any
// @Router /api/complaints [get]
func (h *Handler) ComplaintsList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	crit := query.Criteria{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	for _, p := range splitCSV(c.Query("priority")) {
		crit.Priorities = append(crit.Priorities, models.Priority(p))
	}
	for _, cat := range splitCSV(c.Query("category")) {
		crit.Categories = append(crit.Categories, models.Category(cat))
	}

	filtered := query.Filter(h.Snapshot.Complaints, crit)
	result := query.Paginate(filtered, page, limit)

	writeSuccess(c, gin.H{
		"complaints":  result.Items,
		"total":       result.Total,
		"page":        result.Page,
		"total_pages": result.TotalPages,
		"limit":       result.Limit,
	}, "")
}

type CreateComplaintRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Subject      string `json:"subject" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Channel      string `json:"channel" validate:"omitempty,oneof=email chat phone web"`
}

// @Summary Submit a complaint
// @Description Classifies the complaint, routes it to the owning team and returns the triaged projection
// @Tags complaints
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/complaints [post]
func (h *Handler) ComplaintCreate(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	verdict := h.Classifier.Classify(req.Subject, req.Description)
	team, ok := h.Snapshot.TeamForCategory(verdict.Category)
	if !ok {
		writeError(c, http.StatusInternalServerError, "No team handles category "+string(verdict.Category))
		return
	}

	channel := models.ChannelWeb
	if req.Channel != "" {
		channel = models.Channel(req.Channel)
	}

	now := h.now()
	complaint := models.Complaint{
		ID:            fmt.Sprintf("CMP%05d", len(h.Snapshot.Complaints)+1),
		CustomerID:    len(h.Snapshot.Customers) + 1,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.Email,
		Subject:       req.Subject,
		Description:   req.Description,
		Category:      verdict.Category,
		Priority:      verdict.Priority,
		Sentiment:     verdict.Sentiment,
		Status:        models.StatusNew,
		Channel:       channel,
		TeamID:        team.ID,
		Timestamp:     now,
		UpdatedAt:     now,
		SLADeadline:   now.Add(verdict.Priority.SLAOffset()),
		AIConfidence:  verdict.Confidence,
		Entities:      verdict.Entities,
	}

	h.Logger.Info().
		Str("complaint_id", complaint.ID).
		Str("category", string(complaint.Category)).
		Str("priority", string(complaint.Priority)).
		Str("team", complaint.TeamID).
		Msg("complaint classified and routed")

	writeSuccessStatus(c, http.StatusCreated, h.detail(complaint), "Complaint created successfully")
}

// @Summary Complaint detail
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/complaints/{id} [get]
func (h *Handler) ComplaintDetail(c *gin.Context) {
	complaint, ok := h.Snapshot.Complaint(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, "Complaint not found")
		return
	}
	writeSuccess(c, h.detail(complaint), "")
}

type UpdateComplaintRequest struct {
	Status     string `json:"status" validate:"omitempty,oneof=new in_progress resolved escalated"`
	Priority   string `json:"priority" validate:"omitempty,oneof=urgent high medium low"`
	AssignedTo string `json:"assigned_to" validate:"omitempty"`
}

// @Summary Update complaint
// @Description Returns the updated projection; the underlying snapshot is immutable
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/complaints/{id} [put]
func (h *Handler) ComplaintUpdate(c *gin.Context) {
	complaint, ok := h.Snapshot.Complaint(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, "Complaint not found")
		return
	}

	var req UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if req.Status != "" {
		complaint.Status = models.Status(req.Status)
	}
	if req.Priority != "" {
		complaint.Priority = models.Priority(req.Priority)
		complaint.SLADeadline = complaint.Timestamp.Add(complaint.Priority.SLAOffset())
	}
	if req.AssignedTo != "" {
		team, ok := h.Snapshot.Team(complaint.TeamID)
		if !ok || !team.HasMember(req.AssignedTo) {
			writeError(c, http.StatusBadRequest, "Assignee "+req.AssignedTo+" is not a member of team "+complaint.TeamID)
			return
		}
		complaint.AssignedTo = req.AssignedTo
	}
	complaint.UpdatedAt = h.now()

	writeSuccess(c, h.detail(complaint), "Complaint updated successfully")
}

// @Summary Resolve complaint
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/complaints/{id}/resolve [post]
func (h *Handler) ComplaintResolve(c *gin.Context) {
	complaint, ok := h.Snapshot.Complaint(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, "Complaint not found")
		return
	}
	complaint.Status = models.StatusResolved
	complaint.UpdatedAt = h.now()
	writeSuccess(c, h.detail(complaint), "Complaint resolved successfully")
}

// @Summary Escalate complaint
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/complaints/{id}/escalate [post]
func (h *Handler) ComplaintEscalate(c *gin.Context) {
	complaint, ok := h.Snapshot.Complaint(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, "Complaint not found")
		return
	}
	complaint.Status = models.StatusEscalated
	if complaint.Priority != models.PriorityUrgent {
		complaint.Priority = models.PriorityUrgent
		complaint.SLADeadline = complaint.Timestamp.Add(complaint.Priority.SLAOffset())
	}
	complaint.UpdatedAt = h.now()
	writeSuccess(c, h.detail(complaint), "Complaint escalated successfully")
}

func (h *Handler) detail(complaint models.Complaint) complaintDetail {
	remaining, state := query.SLARemaining(complaint, h.now())
	team, _ := h.Snapshot.Team(complaint.TeamID)

	timeline := []timelineEntry{{
		Timestamp:   complaint.Timestamp.Format(time.RFC3339),
		Action:      "Complaint Received",
		Description: "Complaint received from " + complaint.CustomerName,
		User:        "System",
	}}
	if complaint.UpdatedAt.After(complaint.Timestamp) {
		timeline = append(timeline, timelineEntry{
			Timestamp:   complaint.UpdatedAt.Format(time.RFC3339),
			Action:      "Status Updated",
			Description: "Status changed to " + string(complaint.Status),
			User:        "System",
		})
	}

	return complaintDetail{
		Complaint:           complaint,
		SLARemainingMinutes: remaining,
		SLAState:            state,
		Team:                team,
		ActivityTimeline:    timeline,
	}
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" && part != "all" {
			out = append(out, part)
		}
	}
	return out
}
