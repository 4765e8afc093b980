package ports

import (
	"context"

	"github.com/easel-ai/easel/pkg/domain"
)

// ProjectStore defines the interface for persisting project documents.
// The core never persists on its own: the caller durably stores the
// returned document after each successful mutation.
type ProjectStore interface {
	// Save persists the project, keyed by its id.
	Save(ctx context.Context, project *domain.Project) error

	// Load retrieves a project by id.
	// Returns domain.ErrProjectNotFound if the project does not exist.
	Load(ctx context.Context, projectID string) (*domain.Project, error)

	// Delete removes the project.
	Delete(ctx context.Context, projectID string) error

	// List returns the ids of all stored projects.
	List(ctx context.Context) ([]string, error)
}
