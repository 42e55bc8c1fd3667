package mocks

import (
	"context"
	"errors"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface
type MockAuthUsecase struct {
	// Control mock behavior
	UsernameTaken      bool
	ShouldFailCheck    bool
	ShouldFailRegister bool
	RegisterConflict   bool
	ShouldFailLogin    bool

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string

	// Captured inputs
	LastRegisterInput usecasecontract.RegisterInput
}

// Ensure MockAuthUsecase implements the interface used by the handler
var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "eco_warrior",
			Email:    "eco@example.com",
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockAuthUsecase) CheckUsername(ctx context.Context, username string) (bool, error) {
	if m.ShouldFailCheck {
		return false, errors.New("check failed")
	}
	return !m.UsernameTaken, nil
}

func (m *MockAuthUsecase) Register(ctx context.Context, input usecasecontract.RegisterInput) (*entity.User, error) {
	m.LastRegisterInput = input
	if m.RegisterConflict {
		return nil, entity.ErrConflict
	}
	if m.ShouldFailRegister {
		return nil, errors.New("registration failed")
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", errors.New("invalid credentials")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}
