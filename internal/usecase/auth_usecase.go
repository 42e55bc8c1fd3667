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

const errInternalServer = "internal server error"

// AuthUsecase implements the IAuthUseCase interface.
type AuthUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if AuthUsecase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// CheckUsername reports whether a username is still available. No
// format validation beyond existence.
func (uc *AuthUsecase) CheckUsername(ctx context.Context, username string) (bool, error) {
	_, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return true, nil
		}
		uc.logger.Errorf("failed to check username availability: %v", err)
		return false, errors.New(errInternalServer)
	}
	return false, nil
}

// splitName derives first and last name from a single full-name field.
// Only the first two whitespace tokens are kept; middle and additional
// names are dropped.
func splitName(name string) (string, string) {
	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	default:
		return tokens[0], tokens[1]
	}
}

// Register handles user registration.
func (uc *AuthUsecase) Register(ctx context.Context, input usecasecontract.RegisterInput) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(input.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}

	// Combined existence query: one lookup covers both identities.
	exists, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		uc.logger.Errorf("failed to check for existing user: %v", err)
		return nil, errors.New(errInternalServer)
	}
	if exists {
		return nil, fmt.Errorf("%w: user already exists", entity.ErrConflict)
	}

	hashedPassword, err := uc.hasher.HashPassword(input.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, errors.New("failed to process password")
	}

	// Legacy field mapping: split a single name field when the separate
	// first/last fields were not supplied.
	firstName, lastName := input.FirstName, input.LastName
	if firstName == "" && lastName == "" && input.Name != "" {
		firstName, lastName = splitName(input.Name)
	}
	designation := input.Designation
	if designation == "" {
		designation = input.SustainabilityFocus
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		LastName:     lastName,
		Bio:          entity.DefaultBio,
		AvatarURL:    entity.DefaultAvatarURL,
		State:        input.State,
		City:         input.City,
		Age:          input.Age,
		Designation:  designation,
		JoinedAt:     now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user")
	}

	return user, nil
}

// Login handles user login and token generation. The identifier is
// matched against username or email. Lookup failures and password
// mismatches both come back as the same invalid-credentials error so
// callers cannot enumerate accounts.
func (uc *AuthUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error) {
	var user *entity.User
	var err error

	if uc.validator.ValidateEmail(identifier) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, identifier)
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, identifier)
	}

	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", "", errors.New("invalid credentials")
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", errors.New(errInternalServer)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", errors.New("invalid credentials")
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", "", errors.New("failed to generate token")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return nil, "", "", errors.New("failed to generate token")
	}

	return user, accessToken, refreshToken, nil
}
