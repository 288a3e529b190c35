package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sseKeepAlive = 20 * time.Second

// EventSource hands out live state event subscriptions.
type EventSource interface {
	Subscribe() (<-chan entity.StateEvent, func())
}

// DeviceLink serves a phone websocket until it disconnects.
type DeviceLink interface {
	Attach(ctx context.Context, conn *websocket.Conn) error
}

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Events EventSource
	Device DeviceLink
	Logger *slog.Logger
}

// StreamHandler serves the long-lived connections: the event stream and the device socket.
type StreamHandler struct {
	events   EventSource
	device   DeviceLink
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		events: params.Events,
		device: params.Device,
		logger: params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The token is checked before the upgrade, so any origin may connect.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Events streams state changes as server-sent events until the client goes away.
func (h *StreamHandler) Events(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	events, cancel := h.events.Subscribe()
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	keepAlive := time.NewTicker(sseKeepAlive)
	defer keepAlive.Stop()

	logger.Debug("Event stream opened")

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Event stream closed")

			return nil
		case <-keepAlive.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(res, event); err != nil {
				logger.Debug("Event stream write failed", slog.Any("error", err))

				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, event entity.StateEvent) error {
	data, err := json.Marshal(event.Payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode state event")
	}

	_, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Type, data)

	return errors.WithStack(err)
}

// DeviceSocket upgrades the request and hands the connection to the device bridge.
func (h *StreamHandler) DeviceSocket(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the client.
		logger.Warn("Device websocket upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	logger.Info("Device connected", slog.String("remote_ip", c.RealIP()))

	err = h.device.Attach(context.WithoutCancel(c.Request().Context()), conn)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		logger.Warn("Device connection ended", slog.Any("error", err))

		return nil
	}

	logger.Info("Device disconnected")

	return nil
}
