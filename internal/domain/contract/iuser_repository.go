package contract

import (
	"context"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// ExistsByUsernameOrEmail reports whether any user holds either
	// identity. Used as the combined uniqueness check at registration.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	// UpdateUserFields applies a partial update by ID and returns the
	// updated user. The caller is responsible for whitelisting keys.
	UpdateUserFields(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error)
	// IncrementProjectsCreated atomically bumps the stored counter.
	IncrementProjectsCreated(ctx context.Context, username string) error
}
