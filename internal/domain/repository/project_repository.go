package repository

import (
	"context"

	"github.com/webatelier/landing-api/internal/domain/entity"
)

// ProjectRepository defines the persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	// ListActive returns active projects, newest first.
	ListActive(ctx context.Context) ([]entity.Project, error)
}
