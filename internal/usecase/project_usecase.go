package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/enviconnect/enviconnect/internal/domain/contract"
	"github.com/enviconnect/enviconnect/internal/domain/entity"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

// ProjectUsecase implements the IProjectUseCase interface.
type ProjectUsecase struct {
	projectRepo   contract.IProjectRepository
	userRepo      contract.IUserRepository
	imageStore    contract.IImageStore
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	projectCache  contract.IProjectCache
}

// NewProjectUsecase creates a new ProjectUsecase instance.
func NewProjectUsecase(
	projectRepo contract.IProjectRepository,
	userRepo contract.IUserRepository,
	imageStore contract.IImageStore,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo:   projectRepo,
		userRepo:      userRepo,
		imageStore:    imageStore,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

var _ usecasecontract.IProjectUseCase = (*ProjectUsecase)(nil)

// SetProjectCache wires an optional list cache.
func (uc *ProjectUsecase) SetProjectCache(cache contract.IProjectCache) {
	uc.projectCache = cache
}

// CountWords counts non-empty whitespace-separated tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// CreateProject validates the input, stores the attached images in the
// order received and persists the new project.
func (uc *ProjectUsecase) CreateProject(ctx context.Context, input usecasecontract.CreateProjectInput) (*entity.Project, error) {
	if !entity.ValidTheme(input.Theme) {
		return nil, fmt.Errorf("%w: unknown theme %q", entity.ErrValidation, input.Theme)
	}
	if input.Name == "" || input.Duration == "" || input.Location == "" || input.Brief == "" || input.Details == "" {
		return nil, fmt.Errorf("%w: missing required fields", entity.ErrValidation)
	}
	// Rejected, never truncated, on the server side.
	if CountWords(input.Brief) > entity.BriefMaxWords {
		return nil, fmt.Errorf("%w: brief description cannot exceed %d words", entity.ErrValidation, entity.BriefMaxWords)
	}
	if len(input.Brief) > entity.BriefMaxChars {
		return nil, fmt.Errorf("%w: brief description cannot exceed %d characters", entity.ErrValidation, entity.BriefMaxChars)
	}

	imagePaths := make([]string, 0, len(input.Images))
	for _, img := range input.Images {
		path, err := uc.imageStore.SaveImage(ctx, img.OriginalName, img.Reader)
		if err != nil {
			uc.logger.Errorf("failed to store project image %s: %v", img.OriginalName, err)
			return nil, fmt.Errorf("failed to store project image")
		}
		imagePaths = append(imagePaths, path)
	}

	now := time.Now()
	project := &entity.Project{
		ID:            uc.uuidGenerator.NewUUID(),
		Theme:         entity.ProjectTheme(input.Theme),
		Name:          strings.TrimSpace(input.Name),
		Duration:      input.Duration,
		Location:      input.Location,
		Brief:         input.Brief,
		Details:       input.Details,
		Info:          input.Info,
		Images:        imagePaths,
		Owner:         input.Owner,
		Volunteers:    0,
		VolunteerGoal: entity.DefaultVolunteerGoal,
		Status:        entity.ProjectStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.projectRepo.CreateProject(ctx, project); err != nil {
		uc.logger.Errorf("failed to create project: %v", err)
		return nil, fmt.Errorf("failed to create project")
	}

	if err := uc.userRepo.IncrementProjectsCreated(ctx, project.Owner); err != nil {
		// The project is already persisted; the stored counter is a
		// convenience and the live count comes from the project list.
		uc.logger.Warnf("failed to bump projects_created for %s: %v", project.Owner, err)
	}

	if uc.projectCache != nil {
		_ = uc.projectCache.InvalidateProjectList(ctx)
	}

	return project, nil
}

// ListProjects returns all projects, newest first.
func (uc *ProjectUsecase) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	if uc.projectCache != nil {
		cached, found, err := uc.projectCache.GetProjectList(ctx)
		if err == nil && found {
			return cached, nil
		}
		if err != nil {
			uc.logger.Warnf("project list cache error: %v", err)
		}
	}

	projects, err := uc.projectRepo.ListProjects(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list projects: %v", err)
		return nil, errors.New(errInternalServer)
	}

	if uc.projectCache != nil {
		_ = uc.projectCache.SetProjectList(ctx, projects)
	}

	return projects, nil
}

// GetProject returns a single project by ID.
func (uc *ProjectUsecase) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		uc.logger.Errorf("failed to get project %s: %v", id, err)
		return nil, errors.New(errInternalServer)
	}
	return project, nil
}

// ListProjectsByOwner returns the owner's projects, newest first.
func (uc *ProjectUsecase) ListProjectsByOwner(ctx context.Context, owner string) ([]*entity.Project, error) {
	projects, err := uc.projectRepo.ListProjectsByOwner(ctx, owner)
	if err != nil {
		uc.logger.Errorf("failed to list projects for owner %s: %v", owner, err)
		return nil, errors.New(errInternalServer)
	}
	return projects, nil
}

// JoinProject increments the project's volunteer counter through the
// store-level atomic increment and returns the new count. Joining past
// the volunteer goal is allowed; the goal is advisory.
func (uc *ProjectUsecase) JoinProject(ctx context.Context, id string) (int, error) {
	volunteers, err := uc.projectRepo.IncrementVolunteers(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return 0, err
		}
		uc.logger.Errorf("failed to join project %s: %v", id, err)
		return 0, errors.New(errInternalServer)
	}

	if uc.projectCache != nil {
		_ = uc.projectCache.InvalidateProjectList(ctx)
	}

	return volunteers, nil
}
