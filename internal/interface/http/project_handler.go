package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/webatelier/landing-api/internal/application"
	"github.com/webatelier/landing-api/internal/interface/middleware"
	"github.com/webatelier/landing-api/pkg/response"
	"github.com/webatelier/landing-api/pkg/validation"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type createProjectRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	ImageURL    string `json:"imageUrl" binding:"required,url"`
	Category    string `json:"category" binding:"omitempty,oneof=first second third ongoing complete"`
}

func (r *createProjectRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Category = strings.TrimSpace(r.Category)
}

// List GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.ListActive(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list projects failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil).JSON(c)
		return
	}
	response.Success(c, http.StatusOK, projects, "").
		WithCount(len(projects)).
		JSON(c)
}

// Create POST /api/projects (admin)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := validation.BindJSON(c, &req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err)).JSON(c)
		return
	}

	project, err := h.Svc.Create(c.Request.Context(), middleware.IdentityFrom(c), application.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if errors.Is(err, application.ErrForbidden) {
		response.Error[any](c, http.StatusForbidden, "insufficient role", nil).JSON(c)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("create project failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil).JSON(c)
		return
	}

	response.Success(c, http.StatusCreated, project, "project created successfully").JSON(c)
}
