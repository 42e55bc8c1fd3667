package dto

import (
	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

// CreateProjectResponse is returned after a successful project
// creation.
type CreateProjectResponse struct {
	Message string          `json:"message"`
	Project *entity.Project `json:"project"`
}

// JoinProjectResponse is returned after a successful join.
type JoinProjectResponse struct {
	Message    string `json:"message"`
	Volunteers int    `json:"volunteers"`
}

// UpdateProfileResponse is returned after a successful profile update.
type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}
