package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/webatelier/landing-api/internal/domain/entity"
	repo "github.com/webatelier/landing-api/internal/domain/repository"
)

// ProjectService orchestrates portfolio writes and the public listing.
type ProjectService struct {
	Repo   repo.ProjectRepository
	Logger *logrus.Logger
}

func NewProjectService(r repo.ProjectRepository, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Repo: r, Logger: logger}
}

type CreateProjectInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
}

// Create persists a new active project on behalf of an admin identity.
func (s *ProjectService) Create(ctx context.Context, id *entity.Identity, in CreateProjectInput) (*entity.Project, error) {
	if id == nil || id.Role != entity.RoleAdmin {
		return nil, ErrForbidden
	}

	uploadedBy := id.Email
	if uploadedBy == "" {
		uploadedBy = "admin"
	}
	category := in.Category
	if category == "" {
		category = entity.CategoryFirst
	}

	project := &entity.Project{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Category:    category,
		Status:      entity.ProjectStatusActive,
		UploadedBy:  uploadedBy,
	}
	if err := s.Repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ListActive returns active projects, newest first. No auth required.
func (s *ProjectService) ListActive(ctx context.Context) ([]entity.Project, error) {
	return s.Repo.ListActive(ctx)
}
