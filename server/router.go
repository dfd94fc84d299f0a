package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Routes *RouteHandlers
	// AllowedOrigins empty means any origin.
	AllowedOrigins []string
}

// NewRouter wires the HTTP routes exposed by the executable.
func NewRouter(logger *slog.Logger, deps RouterDependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if deps.Routes != nil {
		r.GET("/stations", deps.Routes.handleStations)
		r.GET("/map", deps.Routes.handleMap)
		r.GET("/route", deps.Routes.handleRoute)
		r.GET("/legs", deps.Routes.handleLegs)
	}

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
