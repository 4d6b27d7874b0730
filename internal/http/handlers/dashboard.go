package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/xeonx/timeago"

	"github.com/triagedesk/backend/internal/models"
	"github.com/triagedesk/backend/internal/query"
)

// @Summary Dashboard statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/dashboard/stats [get]
func (h *Handler) DashboardStats(c *gin.Context) {
	writeSuccess(c, query.ComputeStats(h.Snapshot.Complaints, h.now()), "")
}

type prioritySlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// @Summary Dashboard chart data
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/dashboard/charts [get]
func (h *Handler) DashboardCharts(c *gin.Context) {
	priorityCounts := query.CountByPriority(h.Snapshot.Complaints)
	priorities := make([]prioritySlice, 0, len(priorityCounts))
	for _, pc := range priorityCounts {
		priorities = append(priorities, prioritySlice{
			Label: pc.Key,
			Value: pc.Count,
			Color: models.Priority(pc.Key).Color(),
		})
	}

	trend := query.Trend(h.Snapshot.Complaints, 7, h.now())
	overTime := make([]gin.H, 0, len(trend))
	for _, b := range trend {
		overTime = append(overTime, gin.H{"date": b.Date, "count": b.Total})
	}

	writeSuccess(c, gin.H{
		"priority_distribution": priorities,
		"category_breakdown":    query.CountByCategory(h.Snapshot.Complaints),
		"sentiment_breakdown":   query.CountBySentiment(h.Snapshot.Complaints),
		"complaints_over_time":  overTime,
	}, "")
}

type recentComplaint struct {
	models.Complaint
	TimeAgo string `json:"time_ago"`
}

// @Summary Recent complaints
// @Tags dashboard
// @Produce json
// @Success 200 {array} map[string]any
// @Router /api/dashboard/recent [get]
func (h *Handler) DashboardRecent(c *gin.Context) {
	limit := min(10, len(h.Snapshot.Complaints))
	out := make([]recentComplaint, 0, limit)
	for _, complaint := range h.Snapshot.Complaints[:limit] {
		out = append(out, recentComplaint{
			Complaint: complaint,
			TimeAgo:   timeago.English.Format(complaint.Timestamp),
		})
	}
	writeSuccess(c, out, "")
}

type activityItem struct {
	models.ActivityEvent
	TimeAgo string `json:"time_ago"`
}

// @Summary Activity feed
// @Tags dashboard
// @Produce json
// @Success 200 {array} map[string]any
// @Router /api/dashboard/activity [get]
func (h *Handler) DashboardActivity(c *gin.Context) {
	limit := min(20, len(h.Snapshot.Events))
	out := make([]activityItem, 0, limit)
	for _, event := range h.Snapshot.Events[:limit] {
		out = append(out, activityItem{
			ActivityEvent: event,
			TimeAgo:       timeago.English.Format(event.Timestamp),
		})
	}
	writeSuccess(c, out, "")
}
