package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/webatelier/landing-api/internal/application"
	"github.com/webatelier/landing-api/pkg/response"
	"github.com/webatelier/landing-api/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type submitReviewRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}

func (r *submitReviewRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Comment = strings.TrimSpace(r.Comment)
}

// List GET /api/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, stats, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list reviews failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil).JSON(c)
		return
	}
	response.Success(c, http.StatusOK, reviews, "").
		WithCount(len(reviews)).
		WithStats(stats).
		JSON(c)
}

// Submit POST /api/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req submitReviewRequest
	if err := validation.BindJSON(c, &req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "validation failed", validation.ToDetails(err)).JSON(c)
		return
	}

	review, stats, err := h.Svc.Submit(c.Request.Context(), application.SubmitReviewInput{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if errors.Is(err, application.ErrRateLimited) {
		response.Error[any](c, http.StatusTooManyRequests, "please wait before submitting another review", nil).JSON(c)
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("submit review failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil).JSON(c)
		return
	}

	response.Success(c, http.StatusCreated, review, "review submitted successfully").
		WithStats(stats).
		JSON(c)
}

// Stats GET /api/reviews/stats
func (h *ReviewHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("review stats failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil).JSON(c)
		return
	}
	response.Success(c, http.StatusOK, stats, "").JSON(c)
}
