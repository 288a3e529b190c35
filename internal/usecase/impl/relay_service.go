package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/pkg/errors"
)

// maxRelayBatch is the most tokens a single push request may carry.
const maxRelayBatch = 500

// relayService implements the RelayUsecase interface.
type relayService struct {
	notifier service.NotificationService
	tokens   []string
	logger   *slog.Logger
}

// NewRelayService is the constructor for relayService.
func NewRelayService(cfg *config.Config, notifier service.NotificationService, logger *slog.Logger) usecase.RelayUsecase {
	var tokens []string
	if cfg.Relay != nil {
		for _, token := range cfg.Relay.CaregiverTokens {
			if token != "" {
				tokens = append(tokens, token)
			}
		}
	}

	return &relayService{
		notifier: notifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// RelayAlert pushes the alert to every caregiver device in batches.
func (srv *relayService) RelayAlert(ctx context.Context, event *service.AlertEvent) (*usecase.RelayResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event == nil || event.AlertID == "" || event.Type == "" {
		return nil, domainerrors.ErrInvalidAlertEvent
	}

	result := &usecase.RelayResult{}
	if len(srv.tokens) == 0 {
		logger.Warn("No caregiver tokens configured, alert not relayed", slog.String("alert_id", event.AlertID))

		return result, nil
	}

	alert := caregiverAlert(event)

	for start := 0; start < len(srv.tokens); start += maxRelayBatch {
		end := min(start+maxRelayBatch, len(srv.tokens))

		report, err := srv.notifier.PushAlert(ctx, srv.tokens[start:end], alert)
		if err != nil {
			return result, errors.Wrapf(err, "failed to send batch %d-%d", start, end)
		}

		result.Delivered += report.Delivered
		result.Failed += report.Failed
		result.InvalidTokens = append(result.InvalidTokens, report.InvalidTokens...)
	}

	logger.Info("Alert relayed to caregivers",
		slog.String("alert_id", event.AlertID),
		slog.Int("delivered", result.Delivered),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func caregiverAlert(event *service.AlertEvent) *service.CaregiverAlert {
	name := event.Name
	if name == "" {
		name = "Your contact"
	}

	body := event.Details
	data := map[string]string{
		"alert_id":   event.AlertID,
		"alert_type": event.Type,
		"raised_at":  event.RaisedAt.UTC().Format(time.RFC3339),
	}
	if event.Phone != "" {
		data["phone"] = event.Phone
	}

	if event.Latitude != nil && event.Longitude != nil {
		lat := strconv.FormatFloat(*event.Latitude, 'f', 6, 64)
		lng := strconv.FormatFloat(*event.Longitude, 'f', 6, 64)
		data["latitude"] = lat
		data["longitude"] = lng
		body = fmt.Sprintf("%s. Last known location: https://maps.google.com/?q=%s,%s", body, lat, lng)
	}

	return &service.CaregiverAlert{
		Title: fmt.Sprintf("SOS: %s needs help", name),
		Body:  body,
		Data:  data,
	}
}
