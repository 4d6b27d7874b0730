package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/triagedesk/backend/internal/sample"
	"github.com/triagedesk/backend/internal/store"
)

type Handler struct {
	Snapshot   *store.Snapshot
	Classifier *sample.Classifier
	Validator  *validator.Validate
	Logger     zerolog.Logger
	AdminKey   string

	// Now is the clock used for SLA math and day bucketing; tests pin it.
	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

func writeSuccess(c *gin.Context, data any, message string) {
	writeSuccessStatus(c, http.StatusOK, data, message)
}

func writeSuccessStatus(c *gin.Context, status int, data any, message string) {
	body := gin.H{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
		"code":    status,
	})
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	writeSuccess(c, gin.H{
		"status":           "ok",
		"timestamp":        h.now(),
		"total_complaints": len(h.Snapshot.Complaints),
	}, "")
}
