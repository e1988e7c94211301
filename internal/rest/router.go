package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/braintap/kpi-engine/internal/api/v1"
	"github.com/braintap/kpi-engine/internal/config"
	"github.com/braintap/kpi-engine/internal/logger"
	"github.com/braintap/kpi-engine/internal/rest/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Metrics *v1.MetricsHandler
}

// NewRouter wires the middleware chain and the versioned API routes.
func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.LoggingMiddleware(log),
		middleware.ErrorHandlerMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/v1")
	{
		apiV1.GET("/metrics/:view", handlers.Metrics.GetView)
	}

	return router
}
