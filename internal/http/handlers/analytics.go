package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/triagedesk/backend/internal/query"
)

// @Summary Analytics overview
// @Tags analytics
// @Produce json
// @Param time_range query string false "today, 7days, 30days or 90days"
// @Success 200 {object} map[string]any
// @Router /api/analytics/overview [get]
func (h *Handler) AnalyticsOverview(c *gin.Context) {
	timeRange := c.DefaultQuery("time_range", "30days")
	days := rangeDays(timeRange)

	now := h.now()
	inRange := query.WithinDays(h.Snapshot.Complaints, days, now)

	writeSuccess(c, gin.H{
		"time_range":          timeRange,
		"total_complaints":    len(inRange),
		"category_breakdown":  query.CountByCategory(inRange),
		"priority_breakdown":  query.CountByPriority(inRange),
		"status_breakdown":    query.CountByStatus(inRange),
		"sentiment_breakdown": query.CountBySentiment(inRange),
		"team_workload":       query.CountByTeam(inRange, h.Snapshot.Teams),
		"date_range": gin.H{
			"start_date": now.UTC().AddDate(0, 0, -(days - 1)).Format("2006-01-02"),
			"end_date":   now.UTC().Format("2006-01-02"),
		},
	}, "")
}

// @Summary Complaint trends
// @Tags analytics
// @Produce json
// @Param days query int false "Number of daily buckets (default 30)"
// @Success 200 {array} query.TrendBucket
// @Router /api/analytics/trends [get]
func (h *Handler) AnalyticsTrends(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 {
		days = 30
	}
	writeSuccess(c, query.Trend(h.Snapshot.Complaints, days, h.now()), "")
}

// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Router /api/teams [get]
func (h *Handler) TeamsList(c *gin.Context) {
	writeSuccess(c, h.Snapshot.Teams, "")
}

func rangeDays(timeRange string) int {
	switch timeRange {
	case "today":
		return 1
	case "7days":
		return 7
	case "90days":
		return 90
	default:
		return 30
	}
}
