package mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

// MockProfileUsecase is a mock implementation of the IProfileUseCase interface
type MockProfileUsecase struct {
	// Control mock behavior
	UserMissing       bool
	ShouldFailGet     bool
	ShouldFailUpdate  bool
	RejectUnknownKeys bool

	// Return values
	MockProfile entity.Profile
	MockUser    entity.User

	// Captured inputs
	LastUpdates map[string]interface{}
}

// Ensure MockProfileUsecase implements the interface used by the handler
var _ usecasecontract.IProfileUseCase = (*MockProfileUsecase)(nil)

func NewMockProfileUsecase() *MockProfileUsecase {
	user := entity.User{
		ID:       "mock-user-id",
		Username: "eco_warrior",
		Email:    "eco@example.com",
	}
	return &MockProfileUsecase{
		MockUser: user,
		MockProfile: entity.Profile{
			User:            &user,
			Stats:           entity.ProfileStats{ProjectsCreated: 1},
			CreatedProjects: []*entity.Project{},
			MonthlyStats:    make([]entity.MonthlyStat, 12),
			CategoryStats:   map[string]int{},
		},
	}
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if m.UserMissing {
		return nil, entity.ErrNotFound
	}
	if m.ShouldFailGet {
		return nil, errors.New("profile fetch failed")
	}
	return &m.MockProfile, nil
}

func (m *MockProfileUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	m.LastUpdates = updates
	if m.UserMissing {
		return nil, entity.ErrNotFound
	}
	if m.RejectUnknownKeys {
		for key := range updates {
			return nil, fmt.Errorf("%w: field %q is not editable", entity.ErrValidation, key)
		}
	}
	if m.ShouldFailUpdate {
		return nil, errors.New("update failed")
	}
	return &m.MockUser, nil
}
