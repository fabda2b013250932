package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/webatelier/landing-api/internal/application"
	"github.com/webatelier/landing-api/internal/interface/middleware"
	"github.com/webatelier/landing-api/pkg/response"
)

type UploadHandler struct {
	Svc    *application.UploadService
	Logger *logrus.Logger
}

func NewUploadHandler(svc *application.UploadService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, Logger: logger}
}

// Image POST /api/upload/image (admin)
func (h *UploadHandler) Image(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "no image file provided", nil).JSON(c)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "no image file provided", nil).JSON(c)
		return
	}
	defer func() { _ = file.Close() }()

	res, err := h.Svc.UploadImage(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
	)
	switch {
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "insufficient role", nil).JSON(c)
		return
	case errors.Is(err, application.ErrInvalidFile):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil).JSON(c)
		return
	case errors.Is(err, application.ErrNotConfigured):
		response.Error[any](c, http.StatusInternalServerError, "image upload service not configured", nil).JSON(c)
		return
	case err != nil:
		h.Logger.WithError(err).Error("image upload failed")
		response.Error[any](c, http.StatusInternalServerError, "image upload failed", nil).JSON(c)
		return
	}

	response.Success(c, http.StatusOK, res, "image uploaded successfully").JSON(c)
}
