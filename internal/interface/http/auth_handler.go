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

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r *loginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := validation.BindJSON(c, &req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err)).JSON(c)
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, application.ErrInvalidCredentials) {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil).JSON(c)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil).JSON(c)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token":      res.Token,
		"expires_at": res.ExpiresAt,
		"user": gin.H{
			"id":    res.Identity.ID,
			"email": res.Identity.Email,
			"role":  res.Identity.Role,
		},
	}, "login successful").JSON(c)
}

// Me GET /api/auth/me (admin)
func (h *AuthHandler) Me(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	if id == nil {
		response.Error[any](c, http.StatusUnauthorized, "missing token", nil).JSON(c)
		return
	}
	response.Success(c, http.StatusOK, id, "").JSON(c)
}

// Validate POST /api/auth/validate (admin)
func (h *AuthHandler) Validate(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	if id == nil {
		response.Error[any](c, http.StatusUnauthorized, "missing token", nil).JSON(c)
		return
	}
	response.Success(c, http.StatusOK, id, "token is valid").JSON(c)
}
