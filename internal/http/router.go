package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/triagedesk/backend/internal/config"
	"github.com/triagedesk/backend/internal/http/handlers"
	"github.com/triagedesk/backend/internal/http/middleware"
	"github.com/triagedesk/backend/internal/sample"
	"github.com/triagedesk/backend/internal/store"

	_ "github.com/triagedesk/backend/docs"
)

func Router(cfg config.Config, snapshot *store.Snapshot, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Snapshot:   snapshot,
		Classifier: sample.NewClassifier(cfg.Seed),
		Validator:  validator.New(),
		Logger:     logger,
		AdminKey:   cfg.AdminKey,
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/dashboard/stats", h.DashboardStats)
		api.GET("/dashboard/charts", h.DashboardCharts)
		api.GET("/dashboard/recent", h.DashboardRecent)
		api.GET("/dashboard/activity", h.DashboardActivity)
		api.GET("/complaints", h.ComplaintsList)
		api.POST("/complaints", h.ComplaintCreate)
		api.GET("/complaints/:id", h.ComplaintDetail)
		api.GET("/teams", h.TeamsList)
		api.GET("/analytics/overview", h.AnalyticsOverview)
		api.GET("/analytics/trends", h.AnalyticsTrends)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.PUT("/complaints/:id", h.ComplaintUpdate)
		admin.POST("/complaints/:id/resolve", h.ComplaintResolve)
		admin.POST("/complaints/:id/escalate", h.ComplaintEscalate)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
