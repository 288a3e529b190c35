// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
)

// SessionUsecase defines the interface for the simulated phone login.
type SessionUsecase interface {
	RequestOTP(ctx context.Context, input *RequestOTPInput) error
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)
	// Logout tears down monitoring and revokes the token.
	Logout(ctx context.Context, token string) error
	ValidateSession(token string) (*service.Claims, error)
}

// --- Input DTOs ---

// RequestOTPInput defines the data required to request a verification code.
type RequestOTPInput struct {
	Phone string `json:"phone" validate:"required,min=10"`
}

// LoginInput defines the data required to log in. The code is checked before the phone.
type LoginInput struct {
	OTP   string `json:"otp" validate:"required,len=6,number"`
	Phone string `json:"phone" validate:"required,min=10"`
}
