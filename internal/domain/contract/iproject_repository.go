package contract

import (
	"context"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

type IProjectRepository interface {
	CreateProject(ctx context.Context, project *entity.Project) error
	GetProjectByID(ctx context.Context, id string) (*entity.Project, error)
	// ListProjects returns all projects ordered by creation time
	// descending (newest first).
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	// ListProjectsByOwner returns the owner's projects, newest first.
	ListProjectsByOwner(ctx context.Context, owner string) ([]*entity.Project, error)
	// IncrementVolunteers atomically adds one to the volunteer counter
	// and returns the new count. Implementations must use a store-level
	// atomic increment so concurrent joins never lose updates.
	IncrementVolunteers(ctx context.Context, id string) (int, error)
}
