package usecase

import (
	"github.com/enviconnect/enviconnect/internal/domain/entity"
)

// JWTService defines the interface for session token operations.
type JWTService interface {
	GenerateAccessToken(userID, username string) (string, error)
	GenerateRefreshToken(userID, username string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
	ParseRefreshToken(token string) (*entity.Claims, error)
}
