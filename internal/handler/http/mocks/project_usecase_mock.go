package mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

// MockProjectUsecase is a mock implementation of the IProjectUseCase interface
type MockProjectUsecase struct {
	// Control mock behavior
	ShouldFailCreate bool
	BriefTooLong     bool
	ShouldFailList   bool
	ProjectMissing   bool
	ShouldFailJoin   bool

	// Return values
	MockProject    entity.Project
	MockVolunteers int

	// Captured inputs
	LastCreateInput usecasecontract.CreateProjectInput
}

// Ensure MockProjectUsecase implements the interface used by the handler
var _ usecasecontract.IProjectUseCase = (*MockProjectUsecase)(nil)

func NewMockProjectUsecase() *MockProjectUsecase {
	return &MockProjectUsecase{
		MockProject: entity.Project{
			ID:            "mock-project-id",
			Theme:         entity.ThemeTreePlantation,
			Name:          "Green City Initiative",
			Duration:      "3 months",
			Location:      "San Francisco",
			Brief:         "Urban tree plantation drive.",
			Details:       "Planting native trees across the city.",
			Owner:         "eco_warrior",
			VolunteerGoal: entity.DefaultVolunteerGoal,
			Status:        entity.ProjectStatusActive,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		},
		MockVolunteers: 5,
	}
}

func (m *MockProjectUsecase) CreateProject(ctx context.Context, input usecasecontract.CreateProjectInput) (*entity.Project, error) {
	m.LastCreateInput = input
	if m.BriefTooLong {
		return nil, fmt.Errorf("%w: brief description cannot exceed %d words", entity.ErrValidation, entity.BriefMaxWords)
	}
	if m.ShouldFailCreate {
		return nil, errors.New("create failed")
	}
	return &m.MockProject, nil
}

func (m *MockProjectUsecase) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return []*entity.Project{&m.MockProject}, nil
}

func (m *MockProjectUsecase) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	if m.ProjectMissing {
		return nil, entity.ErrNotFound
	}
	return &m.MockProject, nil
}

func (m *MockProjectUsecase) ListProjectsByOwner(ctx context.Context, owner string) ([]*entity.Project, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return []*entity.Project{&m.MockProject}, nil
}

func (m *MockProjectUsecase) JoinProject(ctx context.Context, id string) (int, error) {
	if m.ProjectMissing {
		return 0, entity.ErrNotFound
	}
	if m.ShouldFailJoin {
		return 0, errors.New("join failed")
	}
	m.MockVolunteers++
	return m.MockVolunteers, nil
}
