package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/webatelier/landing-api/internal/domain/entity"
	handlers "github.com/webatelier/landing-api/internal/interface/http"
	"github.com/webatelier/landing-api/internal/interface/middleware"
	"github.com/webatelier/landing-api/pkg/helpers"
)

// ProjectModule exposes the portfolio.
// Public: GET /api/projects. Admin: POST /api/projects.
type ProjectModule struct {
	Handler *handlers.ProjectHandler
	JWT     *helpers.JWTManager
}

func NewProjectModule(h *handlers.ProjectHandler, jwt *helpers.JWTManager) *ProjectModule {
	return &ProjectModule{Handler: h, JWT: jwt}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", m.Handler.List)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT), middleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/projects", m.Handler.Create)
	}
}
