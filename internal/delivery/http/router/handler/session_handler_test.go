package handler

import (
	"net/http"
	"testing"
	"time"

	"guardian/internal/delivery/http/middleware"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	mockUsecase "guardian/internal/mocks/usecase"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSessionTestEcho(t *testing.T) (*mockUsecase.MockSessionUsecase, *echo.Echo) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: testLogger()})
	auth := middleware.NewAuthMiddleware(sessionUC)

	e := newTestEcho()
	e.POST("/auth/otp", h.RequestOTP)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout, auth.Authenticate)

	return sessionUC, e
}

func TestSessionHandler_RequestOTP(t *testing.T) {
	sessionUC, e := newSessionTestEcho(t)
	sessionUC.EXPECT().RequestOTP(mock.Anything, &usecase.RequestOTPInput{Phone: "5551234567"}).Return(nil).Once()

	rec := serve(e, http.MethodPost, "/auth/otp", `{"phone":"5551234567"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode(t, rec).Success)
}

func TestSessionHandler_RequestOTP_TrimsPhone(t *testing.T) {
	sessionUC, e := newSessionTestEcho(t)
	sessionUC.EXPECT().RequestOTP(mock.Anything, &usecase.RequestOTPInput{Phone: "5551234567"}).Return(nil).Once()

	rec := serve(e, http.MethodPost, "/auth/otp", `{"phone":"  5551234567  "}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_RequestOTP_InvalidPhone(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "too short", body: `{"phone":"555123"}`},
		{name: "blank", body: `{"phone":"          "}`},
		{name: "missing", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := newSessionTestEcho(t)

			rec := serve(e, http.MethodPost, "/auth/otp", tt.body)

			env := requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_PHONE")
			assert.Equal(t, "Please enter a valid phone number", env.Message)
		})
	}
}

func TestSessionHandler_RequestOTP_MalformedBody(t *testing.T) {
	_, e := newSessionTestEcho(t)

	rec := serve(e, http.MethodPost, "/auth/otp", `{"phone":`)

	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
}

func TestSessionHandler_Login(t *testing.T) {
	sessionUC, e := newSessionTestEcho(t)
	expiresAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sessionUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Phone: "5551234567", OTP: "123456"}).
		Return(&entity.Session{Token: "tok", Phone: "5551234567", ExpiresAt: expiresAt}, nil).
		Once()

	rec := serve(e, http.MethodPost, "/auth/login", `{"phone":"5551234567","otp":"123456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	session := decodeData[entity.Session](t, rec)
	assert.Equal(t, "tok", session.Token)
	assert.True(t, expiresAt.Equal(session.ExpiresAt))
}

func TestSessionHandler_Login_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "short code", body: `{"phone":"5551234567","otp":"12"}`, wantCode: "INVALID_OTP"},
		{name: "letters", body: `{"phone":"5551234567","otp":"12a456"}`, wantCode: "INVALID_OTP"},
		{name: "signed number", body: `{"phone":"5551234567","otp":"-12345"}`, wantCode: "INVALID_OTP"},
		{name: "non ascii digits", body: `{"phone":"5551234567","otp":"١٢٣٤٥٦"}`, wantCode: "INVALID_OTP"},
		{name: "bad code and phone", body: `{"phone":"555","otp":"1"}`, wantCode: "INVALID_OTP"},
		{name: "short phone", body: `{"phone":"555","otp":"123456"}`, wantCode: "INVALID_PHONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := newSessionTestEcho(t)

			rec := serve(e, http.MethodPost, "/auth/login", tt.body)

			requireErrorCode(t, rec, http.StatusBadRequest, tt.wantCode)
		})
	}
}

func TestSessionHandler_Login_NotRequested(t *testing.T) {
	sessionUC, e := newSessionTestEcho(t)
	sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOTPNotRequested).Once()

	rec := serve(e, http.MethodPost, "/auth/login", `{"phone":"5551234567","otp":"123456"}`)

	requireErrorCode(t, rec, http.StatusUnauthorized, "OTP_NOT_REQUESTED")
}

func TestSessionHandler_Logout_RevokesPresentedToken(t *testing.T) {
	sessionUC, e := newSessionTestEcho(t)
	sessionUC.EXPECT().ValidateSession("tok").Return(&service.Claims{Phone: "5551234567"}, nil).Once()
	sessionUC.EXPECT().Logout(mock.Anything, "tok").Return(nil).Once()

	req := newRequest(http.MethodPost, "/auth/logout", "")
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := record(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_Logout_RequiresToken(t *testing.T) {
	_, e := newSessionTestEcho(t)

	rec := serve(e, http.MethodPost, "/auth/logout", "")

	requireErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
}
