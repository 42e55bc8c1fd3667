package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
	"github.com/enviconnect/enviconnect/internal/usecase"
	usecasecontract "github.com/enviconnect/enviconnect/internal/usecase/contract"
)

func newAuthUsecase(userRepo *fakeUserRepo) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(userRepo, fakeHasher{}, fakeJWTService{}, nopLogger{}, emailValidator{}, &seqUUID{})
}

func registerInput() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		Username: "eco_warrior",
		Email:    "eco@example.com",
		Password: "Password123!",
		Name:     "John Doe",
	}
}

func TestRegister(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUsecase(userRepo)

	user, err := uc.Register(context.Background(), registerInput())
	assert.NoError(t, err)
	assert.Equal(t, "eco_warrior", user.Username)
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, entity.DefaultBio, user.Bio)
	assert.NotEmpty(t, user.PasswordHash)
	assert.False(t, user.JoinedAt.IsZero())
}

func TestRegister_NameSplitDropsExtraTokens(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())

	input := registerInput()
	input.Name = "John Ronald Reuel Tolkien"
	user, err := uc.Register(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "Ronald", user.LastName)
}

func TestRegister_ExplicitNamesWinOverLegacyField(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())

	input := registerInput()
	input.FirstName = "Jane"
	input.LastName = "Smith"
	user, err := uc.Register(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "Smith", user.LastName)
}

func TestRegister_DesignationFallsBackToSustainabilityFocus(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())

	input := registerInput()
	input.SustainabilityFocus = "Renewable Energy"
	user, err := uc.Register(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, "Renewable Energy", user.Designation)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUsecase(userRepo)

	first, err := uc.Register(context.Background(), registerInput())
	assert.NoError(t, err)

	second := registerInput()
	second.Email = "other@example.com"
	_, err = uc.Register(context.Background(), second)
	assert.True(t, errors.Is(err, entity.ErrConflict))

	// The first account is unchanged.
	stored, err := userRepo.GetUserByID(context.Background(), first.ID)
	assert.NoError(t, err)
	assert.Equal(t, "eco@example.com", stored.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())

	_, err := uc.Register(context.Background(), registerInput())
	assert.NoError(t, err)

	second := registerInput()
	second.Username = "other_user"
	_, err = uc.Register(context.Background(), second)
	assert.True(t, errors.Is(err, entity.ErrConflict))
}

func TestLogin_ByUsernameAndByEmail(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())
	_, err := uc.Register(context.Background(), registerInput())
	assert.NoError(t, err)

	byUsername, accessU, refreshU, err := uc.Login(context.Background(), "eco_warrior", "Password123!")
	assert.NoError(t, err)
	byEmail, accessE, refreshE, err := uc.Login(context.Background(), "eco@example.com", "Password123!")
	assert.NoError(t, err)

	// Identical identity shape either way.
	assert.Equal(t, byUsername.ID, byEmail.ID)
	assert.Equal(t, byUsername.Username, byEmail.Username)
	assert.NotEmpty(t, accessU)
	assert.NotEmpty(t, refreshU)
	assert.NotEmpty(t, accessE)
	assert.NotEmpty(t, refreshE)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())
	_, err := uc.Register(context.Background(), registerInput())
	assert.NoError(t, err)

	_, _, _, err = uc.Login(context.Background(), "eco_warrior", "wrong")
	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_UnknownIdentifierSameError(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())

	_, _, _, err := uc.Login(context.Background(), "nobody", "whatever")
	assert.EqualError(t, err, "invalid credentials")
}

func TestCheckUsername(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo())

	available, err := uc.CheckUsername(context.Background(), "eco_warrior")
	assert.NoError(t, err)
	assert.True(t, available)

	_, err = uc.Register(context.Background(), registerInput())
	assert.NoError(t, err)

	available, err = uc.CheckUsername(context.Background(), "eco_warrior")
	assert.NoError(t, err)
	assert.False(t, available)
}
