package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/webatelier/landing-api/internal/application"
	"github.com/webatelier/landing-api/internal/domain/entity"
	"github.com/webatelier/landing-api/internal/interface/middleware"
	"github.com/webatelier/landing-api/pkg/helpers"
)

type mockProjectRepo struct {
	mock.Mock
}

func (m *mockProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProjectRepo) ListActive(ctx context.Context) ([]entity.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Project), args.Error(1)
}

func newProjectRouter(repo *mockProjectRepo) (*gin.Engine, *helpers.JWTManager) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	h := NewProjectHandler(application.NewProjectService(repo, quietLogger()), quietLogger())

	r := gin.New()
	r.GET("/api/projects", h.List)
	admin := r.Group("/api", middleware.Auth(jwt), middleware.RequireRole(entity.RoleAdmin))
	admin.POST("/projects", h.Create)
	return r, jwt
}

func adminToken(t *testing.T, jwt *helpers.JWTManager) string {
	t.Helper()
	token, _, err := jwt.Generate("admin", "admin@example.com", entity.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestListProjectsEndpoint(t *testing.T) {
	repo := new(mockProjectRepo)
	repo.On("ListActive", mock.Anything).Return([]entity.Project{
		{Title: "Hillside Residence", Status: entity.ProjectStatusActive},
	}, nil)
	r, _ := newProjectRouter(repo)

	w, env := doJSON(t, r, http.MethodGet, "/api/projects", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}

func TestCreateProjectEndpoint(t *testing.T) {
	repo := new(mockProjectRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Project) bool {
		return p.Status == entity.ProjectStatusActive && p.UploadedBy == "admin@example.com"
	})).Return(nil)
	r, jwt := newProjectRouter(repo)

	body, _ := json.Marshal(gin.H{
		"title":    "Riverside Office Park",
		"imageUrl": "https://img.example.com/riverside.jpg",
		"category": "ongoing",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, jwt))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
}

func TestCreateProjectEndpointWhitespaceTitle(t *testing.T) {
	repo := new(mockProjectRepo)
	r, jwt := newProjectRouter(repo)

	body, _ := json.Marshal(gin.H{
		"title":    "   ",
		"imageUrl": "https://img.example.com/x.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, jwt))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Contains(t, env.Errors, "title")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProjectEndpointTrimsTitle(t *testing.T) {
	repo := new(mockProjectRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Project) bool {
		return p.Title == "Riverside Office Park"
	})).Return(nil)
	r, jwt := newProjectRouter(repo)

	body, _ := json.Marshal(gin.H{
		"title":    "  Riverside Office Park  ",
		"imageUrl": "https://img.example.com/riverside.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, jwt))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
}

func TestCreateProjectEndpointUnauthenticated(t *testing.T) {
	repo := new(mockProjectRepo)
	r, _ := newProjectRouter(repo)

	body, _ := json.Marshal(gin.H{"title": "X", "imageUrl": "https://img.example.com/x.jpg"})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProjectEndpointWrongRole(t *testing.T) {
	repo := new(mockProjectRepo)
	r, jwt := newProjectRouter(repo)

	token, _, err := jwt.Generate("x", "viewer@example.com", "viewer")
	require.NoError(t, err)

	body, _ := json.Marshal(gin.H{"title": "X", "imageUrl": "https://img.example.com/x.jpg"})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateProjectEndpointValidation(t *testing.T) {
	repo := new(mockProjectRepo)
	r, jwt := newProjectRouter(repo)

	body, _ := json.Marshal(gin.H{
		"title":    "X",
		"imageUrl": "not a url",
		"category": "nonsense",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t, jwt))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Contains(t, env.Errors, "imageUrl")
	assert.Contains(t, env.Errors, "category")
}
