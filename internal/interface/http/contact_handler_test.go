package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/webatelier/landing-api/internal/application"
	"github.com/webatelier/landing-api/pkg/mailer"
)

func newContactRouter() *gin.Engine {
	svc := application.NewContactService(nil, mailer.NewMailgun("", "", ""), "owner@example.com", true, quietLogger())
	h := NewContactHandler(svc, quietLogger())

	r := gin.New()
	r.POST("/api/contact", h.Submit)
	return r
}

func TestContactEndpoint(t *testing.T) {
	w, env := doJSON(t, newContactRouter(), http.MethodPost, "/api/contact", gin.H{
		"name":    "Jane",
		"email":   "jane@example.com",
		"phone":   "+381601234567",
		"message": "Please call me back.",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "thank you, we will contact you soon", env.Message)
}

func TestContactEndpointWhitespaceMessage(t *testing.T) {
	w, env := doJSON(t, newContactRouter(), http.MethodPost, "/api/contact", gin.H{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "   ",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "message")
}

func TestContactEndpointValidation(t *testing.T) {
	w, env := doJSON(t, newContactRouter(), http.MethodPost, "/api/contact", gin.H{
		"name":  "Jane",
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "message")
}
