package dto

import (
	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserIdentity is the minimal identity returned at login. The password
// hash never leaves the server.
type UserIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	Success      bool         `json:"success"`
	Redirect     string       `json:"redirect"`
	User         UserIdentity `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// RegisterResponse is the DTO for a successful registration.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToUserIdentity converts an entity.User to its minimal identity.
func ToUserIdentity(user *entity.User) UserIdentity {
	return UserIdentity{
		ID:       user.ID,
		Username: user.Username,
	}
}
