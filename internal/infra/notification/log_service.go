package notification

import (
	"context"
	"log/slog"

	"guardian/internal/domain/service"
)

type logService struct {
	logger *slog.Logger
}

// NewLogService creates a notification service that only records the alerts it would have pushed
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) PushAlert(_ context.Context, tokens []string, alert *service.CaregiverAlert) (*service.DeliveryReport, error) {
	s.logger.Info("Caregiver alert logged, Firebase disabled",
		slog.Int("token_count", len(tokens)),
		slog.String("title", alert.Title),
		slog.String("body", alert.Body),
		slog.String("alert_id", alert.Data["alert_id"]),
	)

	return &service.DeliveryReport{Delivered: len(tokens)}, nil
}
