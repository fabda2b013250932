package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webatelier/landing-api/internal/container"
	handlers "github.com/webatelier/landing-api/internal/interface/http"
	"github.com/webatelier/landing-api/internal/interface/middleware"
)

// ContactModule exposes the public quick-contact endpoint, IP rate-limited.
// POST /api/contact
type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	// Single endpoint, so the key needs no path component.
	limiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIP(), nil)
	rg.POST("/contact", limiter, m.Handler.Submit)
}
