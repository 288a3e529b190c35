package impl

import (
	"context"
	"log/slog"
	"time"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const (
	defaultOTPTTL     = 5 * time.Minute
	cacheCleanupEvery = 10 * time.Minute
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	pending *cache.Cache // phone -> outstanding verification challenge
	revoked *cache.Cache // token -> revoked until its expiry

	profile    usecase.ProfileUsecase
	monitoring usecase.MonitoringUsecase
	tokens     service.TokenService
	logger     *slog.Logger

	otpTTL time.Duration
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cfg *config.Config,
	profile usecase.ProfileUsecase,
	monitoring usecase.MonitoringUsecase,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	otpTTL := defaultOTPTTL
	if cfg.Auth != nil && cfg.Auth.OTPTTL > 0 {
		otpTTL = cfg.Auth.OTPTTL
	}

	return &sessionService{
		pending:    cache.New(otpTTL, cacheCleanupEvery),
		revoked:    cache.New(cache.NoExpiration, cacheCleanupEvery),
		profile:    profile,
		monitoring: monitoring,
		tokens:     tokens,
		logger:     logger,
		otpTTL:     otpTTL,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestOTP opens a verification challenge for the phone. No message is actually sent.
// The input is validated by the caller.
func (srv *sessionService) RequestOTP(ctx context.Context, input *usecase.RequestOTPInput) error {
	if input == nil || input.Phone == "" {
		return domainerrors.ErrInvalidPhone
	}
	phone := input.Phone

	srv.pending.Set(phone, struct{}{}, srv.otpTTL)
	srv.log(ctx).Info("Verification code requested", slog.String("phone", deliverycontext.MaskPhone(phone)))

	return nil
}

// Login accepts any validated code for a phone with an outstanding challenge.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	if input == nil || input.OTP == "" {
		return nil, domainerrors.ErrInvalidOTP
	}

	phone := input.Phone
	if _, ok := srv.pending.Get(phone); !ok {
		return nil, domainerrors.ErrOTPNotRequested
	}
	srv.pending.Delete(phone)

	if err := srv.profile.SetPhone(ctx, phone); err != nil {
		return nil, errors.Wrap(err, "failed to record phone")
	}

	token, expiresAt, err := srv.tokens.IssueSessionToken(phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Logged in", slog.String("phone", deliverycontext.MaskPhone(phone)))

	return &entity.Session{Token: token, Phone: phone, ExpiresAt: expiresAt}, nil
}

// Logout tears down monitoring and revokes the token for the rest of its lifetime.
func (srv *sessionService) Logout(ctx context.Context, token string) error {
	srv.monitoring.Teardown(ctx)

	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Logout with an invalid token", slog.Any("error", err))

		return nil
	}

	ttl := cache.NoExpiration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl != cache.NoExpiration && ttl <= 0 {
		return nil
	}
	srv.revoked.Set(token, struct{}{}, ttl)

	srv.log(ctx).Info("Logged out", slog.String("phone", deliverycontext.MaskPhone(claims.Phone)))

	return nil
}

// ValidateSession checks the token and rejects revoked ones.
func (srv *sessionService) ValidateSession(token string) (*service.Claims, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}
	if _, revoked := srv.revoked.Get(token); revoked {
		return nil, domainerrors.ErrUnauthorized.WithDetails("session has been logged out")
	}

	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	return claims, nil
}
