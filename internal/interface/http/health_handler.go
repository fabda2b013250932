package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Env     string
	Version string
	start   time.Time
}

func NewHealthHandler(env, version string) *HealthHandler {
	return &HealthHandler{Env: env, Version: version, start: time.Now()}
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(h.start).Seconds(),
		"environment": h.Env,
	})
}

// Index GET /
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Landing Page API Server",
		"version": h.Version,
		"endpoints": gin.H{
			"health":   "/health",
			"reviews":  "/api/reviews",
			"projects": "/api/projects",
			"auth":     "/api/auth",
			"upload":   "/api/upload",
			"contact":  "/api/contact",
		},
	})
}
