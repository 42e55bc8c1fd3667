package usecasecontract

import (
	"context"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

// IProfileUseCase defines the profile dashboard operations.
type IProfileUseCase interface {
	// GetProfile computes the aggregated activity view for a user.
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	// UpdateProfile applies a partial update restricted to the editable
	// field allow-list. Unknown keys are rejected.
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error)
}
