// Package notification pushes relayed SOS alerts to caregiver devices.
package notification

import (
	"context"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// MaxBatchSize is the number of tokens Firebase accepts in one multicast request
const MaxBatchSize = 500

const (
	sosChannelID = "sos_alerts"
	// An SOS that cannot be delivered within the hour is no longer actionable.
	sosTimeToLive = time.Hour
)

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// Params holds dependencies for the notification service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns the Firebase service when credentials are configured and a logging service otherwise
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, caregiver alerts will only be logged")

		return NewLogService(params.Logger), nil
	}

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath, params.Logger)
}

// NewFirebaseService creates the Firebase Cloud Messaging client
func NewFirebaseService(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.NotificationService, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	logger.Info("Firebase caregiver push ready")

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// PushAlert multicasts the alert to at most MaxBatchSize caregiver tokens
func (s *firebaseService) PushAlert(ctx context.Context, tokens []string, alert *service.CaregiverAlert) (*service.DeliveryReport, error) {
	report := &service.DeliveryReport{}
	if len(tokens) == 0 {
		return report, nil
	}
	if len(tokens) > MaxBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, sosMessage(tokens, alert))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send caregiver alert")
	}

	report.Delivered = response.SuccessCount
	report.Failed = response.FailureCount
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			report.InvalidTokens = append(report.InvalidTokens, tokens[idx])

			continue
		}
		s.logger.Warn("Caregiver alert not delivered", slog.Any("error", sendResponse.Error))
	}

	return report, nil
}

// sosMessage builds a multicast that bypasses quiet hours on both platforms.
func sosMessage(tokens []string, alert *service.CaregiverAlert) *messaging.MulticastMessage {
	ttl := sosTimeToLive

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: alert.Title,
			Body:  alert.Body,
		},
		Data: alert.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			TTL:      &ttl,
			Notification: &messaging.AndroidNotification{
				ChannelID: sosChannelID,
				Priority:  messaging.PriorityMax,
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					CriticalSound: &messaging.CriticalSound{
						Critical: true,
						Name:     "default",
						Volume:   1,
					},
				},
			},
		},
	}
}
