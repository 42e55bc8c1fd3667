package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/enviconnect/enviconnect/internal/domain/contract"
	"github.com/enviconnect/enviconnect/internal/domain/entity"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

// editableProfileFields is the closed set of keys UpdateProfile
// accepts. Anything else, password and email included, is rejected.
var editableProfileFields = map[string]string{
	"bio":         "bio",
	"avatar":      "avatar_url",
	"location":    "location",
	"age":         "age",
	"designation": "designation",
	"firstName":   "first_name",
	"lastName":    "last_name",
	"state":       "state",
	"city":        "city",
}

// ProfileUsecase implements the IProfileUseCase interface.
type ProfileUsecase struct {
	userRepo    contract.IUserRepository
	projectRepo contract.IProjectRepository
	logger      usecasecontract.IAppLogger
	now         func() time.Time
}

// NewProfileUsecase creates a new ProfileUsecase instance.
func NewProfileUsecase(
	userRepo contract.IUserRepository,
	projectRepo contract.IProjectRepository,
	logger usecasecontract.IAppLogger,
) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		logger:      logger,
		now:         time.Now,
	}
}

var _ usecasecontract.IProfileUseCase = (*ProfileUsecase)(nil)

// MonthlyHistogram buckets project creation timestamps of the given
// year into 12 month entries. Projects created in other years are
// excluded.
func MonthlyHistogram(projects []*entity.Project, year int) []entity.MonthlyStat {
	stats := make([]entity.MonthlyStat, 12)
	for i := range stats {
		stats[i].Month = i + 1
	}
	for _, p := range projects {
		if p.CreatedAt.Year() != year {
			continue
		}
		stats[int(p.CreatedAt.Month())-1].Projects++
	}
	return stats
}

// ThemeTally counts projects per theme over the full project set.
func ThemeTally(projects []*entity.Project) map[string]int {
	tally := make(map[string]int)
	for _, p := range projects {
		tally[string(p.Theme)]++
	}
	return tally
}

// GetProfile computes the aggregated dashboard view for a user: public
// fields, live created count, the current-year monthly histogram and
// the per-theme tally.
func (uc *ProfileUsecase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		uc.logger.Errorf("failed to fetch user %s for profile: %v", userID, err)
		return nil, errors.New(errInternalServer)
	}

	created, err := uc.projectRepo.ListProjectsByOwner(ctx, user.Username)
	if err != nil {
		uc.logger.Errorf("failed to fetch projects for profile of %s: %v", user.Username, err)
		return nil, errors.New(errInternalServer)
	}

	return &entity.Profile{
		User: user,
		Stats: entity.ProfileStats{
			ProjectsCreated: len(created),
			ProjectsJoined:  user.ProjectsJoined,
			Contributions:   user.Contributions,
		},
		CreatedProjects: created,
		MonthlyStats:    MonthlyHistogram(created, uc.now().Year()),
		CategoryStats:   ThemeTally(created),
	}, nil
}

// UpdateProfile applies a partial update restricted to the editable
// field allow-list and returns the updated user.
func (uc *ProfileUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", entity.ErrValidation)
	}

	mapped := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		field, ok := editableProfileFields[key]
		if !ok {
			return nil, fmt.Errorf("%w: field %q is not editable", entity.ErrValidation, key)
		}
		mapped[field] = value
	}

	user, err := uc.userRepo.UpdateUserFields(ctx, userID, mapped)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		uc.logger.Errorf("failed to update profile of %s: %v", userID, err)
		return nil, errors.New(errInternalServer)
	}
	return user, nil
}
