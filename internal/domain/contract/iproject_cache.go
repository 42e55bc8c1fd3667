package contract

import (
	"context"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

// IProjectCache caches the all-projects listing. Create and join
// invalidate it.
type IProjectCache interface {
	GetProjectList(ctx context.Context) ([]*entity.Project, bool, error)
	SetProjectList(ctx context.Context, projects []*entity.Project) error
	InvalidateProjectList(ctx context.Context) error
}
