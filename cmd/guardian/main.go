package main

import (
	"context"
	"log/slog"
	"os"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/http"
	"guardian/internal/delivery/http/middleware"
	"guardian/internal/delivery/http/router/handler"
	"guardian/internal/domain/service"
	"guardian/internal/infra/archive"
	"guardian/internal/infra/auth"
	"guardian/internal/infra/device"
	"guardian/internal/infra/events"
	"guardian/internal/infra/live"
	logs "guardian/internal/infra/log"
	"guardian/internal/infra/metrics"
	"guardian/internal/infra/persistence/kv"
	"guardian/internal/infra/persistence/repository"
	"guardian/internal/infra/pubsub"
	"guardian/internal/infra/qrcode"
	"guardian/internal/usecase"
	"guardian/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectDevice(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			drainAlerts,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		kv.New,
		events.NewHub,
		func(hub *events.Hub) service.StateBroadcaster { return hub },
		func(hub *events.Hub) handler.EventSource { return hub },
		metrics.New,
		func(m *metrics.Metrics) service.MetricsRecorder { return m },
	)
}

// injectDevice exposes the phone bridge through every port it serves.
func injectDevice() fx.Option {
	return fx.Provide(
		device.NewBridge,
		func(b *device.Bridge) service.LocationProvider { return b },
		func(b *device.Bridge) service.MotionSource { return b },
		func(b *device.Bridge) service.AudioCapture { return b },
		func(b *device.Bridge) service.Haptics { return b },
		func(b *device.Bridge) service.Dialer { return b },
		func(b *device.Bridge) metrics.DeviceStatus { return b },
		func(b *device.Bridge) handler.DeviceLink { return b },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			repository.NewAlertLogRepository,
			repository.NewContactRepository,
			repository.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.New,
			live.NewDialer,
			pubsub.NewEventPublisher,
			archive.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewContactService,
			impl.NewProfileService,
			impl.NewLocationTracker,
			impl.NewAlertDispatcher,
			impl.NewMotionSentry,
			impl.NewVoiceSentry,
			impl.NewMonitoringService,
			impl.NewSessionService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewContactHandler,
			handler.NewProfileHandler,
			handler.NewAlertHandler,
			handler.NewSafetyHandler,
			handler.NewStreamHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// drainAlerts lets in-flight alert publishes and archive writes finish before exit.
func drainAlerts(lc fx.Lifecycle, dispatcher usecase.DispatcherUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := dispatcher.Shutdown(ctx); err != nil {
				logger.Error("Alert side effects dropped at shutdown", slog.Any("error", err))

				return err
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
