package usecasecontract

import (
	"context"
	"io"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

// ImageUpload is one uploaded project image, streamed from the request.
type ImageUpload struct {
	OriginalName string
	Reader       io.Reader
}

// CreateProjectInput carries the fields of the add-project form.
type CreateProjectInput struct {
	Theme    string
	Name     string
	Duration string
	Location string
	Brief    string
	Details  string
	Info     string
	Owner    string
	Images   []ImageUpload
}

// IProjectUseCase defines project lifecycle operations.
type IProjectUseCase interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error)
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	GetProject(ctx context.Context, id string) (*entity.Project, error)
	ListProjectsByOwner(ctx context.Context, owner string) ([]*entity.Project, error)
	// JoinProject increments the project's volunteer counter and
	// returns the new count.
	JoinProject(ctx context.Context, id string) (int, error)
}
