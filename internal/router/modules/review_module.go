package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/webatelier/landing-api/internal/interface/http"
)

// ReviewModule exposes the public review surface.
// GET /api/reviews, POST /api/reviews, GET /api/reviews/stats
// The submit path carries no transport limiter; its throttle is the
// per-email persistence check inside the service.
type ReviewModule struct {
	Handler *handlers.ReviewHandler
}

func NewReviewModule(h *handlers.ReviewHandler) *ReviewModule {
	return &ReviewModule{Handler: h}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	rg.GET("/reviews", m.Handler.List)
	rg.POST("/reviews", m.Handler.Submit)
	rg.GET("/reviews/stats", m.Handler.Stats)
}
