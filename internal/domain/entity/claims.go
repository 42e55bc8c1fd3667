package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims attached to a signed session token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
