package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
type TokenService interface {
	// IssueSessionToken creates a signed token for the given phone number.
	IssueSessionToken(phone string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
