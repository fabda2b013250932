package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webatelier/landing-api/internal/container"
	"github.com/webatelier/landing-api/internal/domain/entity"
	handlers "github.com/webatelier/landing-api/internal/interface/http"
	"github.com/webatelier/landing-api/internal/interface/middleware"
	"github.com/webatelier/landing-api/pkg/helpers"
)

// AuthModule exposes the admin auth surface.
// Public: POST /api/auth/login (IP rate-limited).
// Admin: GET /api/auth/me, POST /api/auth/validate.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Private/loopback callers bypass the login limiter so local tooling and
	// in-cluster probes are never locked out.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT), middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/auth/me", m.Handler.Me)
		admin.POST("/auth/validate", m.Handler.Validate)
	}
}
