// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"guardian/internal/delivery/http/middleware"
	"guardian/internal/delivery/http/response"
	"guardian/internal/delivery/http/validator"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var sessionFieldErrors = map[string]*domainerrors.BaseError{
	"phone": domainerrors.ErrInvalidPhone,
	"otp":   domainerrors.ErrInvalidOTP,
}

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for the login flow.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// RequestOTP opens a verification challenge for the phone.
func (h *SessionHandler) RequestOTP(c echo.Context) error {
	var input usecase.RequestOTPInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone input")
	}

	input.Phone = strings.TrimSpace(input.Phone)
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(validator.Reject(err, sessionFieldErrors))
	}

	if err := h.sessionUC.RequestOTP(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// Login exchanges the verification code for a session token.
func (h *SessionHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	input.Phone = strings.TrimSpace(input.Phone)
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(validator.Reject(err, sessionFieldErrors))
	}

	session, err := h.sessionUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Login successful")
}

// Logout disarms monitoring and revokes the current token.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context(), middleware.SessionToken(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}
