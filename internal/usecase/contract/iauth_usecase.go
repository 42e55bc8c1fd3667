package usecasecontract

import (
	"context"

	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

// RegisterInput carries the registration form fields. Name is the
// legacy single full-name field; it is split into first/last when the
// separate fields are absent.
type RegisterInput struct {
	Username            string
	Email               string
	Password            string
	Name                string
	FirstName           string
	LastName            string
	State               string
	City                string
	Age                 int
	Designation         string
	SustainabilityFocus string
}

// IAuthUseCase defines authentication operations.
type IAuthUseCase interface {
	// CheckUsername reports whether the username is still available.
	CheckUsername(ctx context.Context, username string) (bool, error)
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	// Login matches identifier against username or email and verifies
	// the password. Returns the user plus signed access and refresh
	// tokens.
	Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error)
}
