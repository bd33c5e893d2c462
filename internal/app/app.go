package app

import (
	"net/http"

	"hrms-lite/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ServiceName    = "HRMS Lite API"
	ServiceVersion = "1.0.0"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// BuildApp installs the request middleware, the liveness probe and every
// module's routes on router.
func BuildApp(router *gin.Engine, store *Store, logger *zap.Logger) {
	if logger == nil {
		logger = zap.L()
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger.Named("http")),
	)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: ServiceName,
			Version: ServiceVersion,
		})
	})

	registerModules(router, store, logger)
}
