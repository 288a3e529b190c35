package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/delivery/http/response"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SafetyHandlerParams holds dependencies for SafetyHandler, injected by Fx.
type SafetyHandlerParams struct {
	fx.In

	DispatcherUC usecase.DispatcherUsecase
	MonitoringUC usecase.MonitoringUsecase
	LocationUC   usecase.LocationUsecase
	VoiceUC      usecase.VoiceUsecase
	DashboardUC  usecase.DashboardUsecase
	Dialer       service.Dialer
	Logger       *slog.Logger
}

// SafetyHandler drives the dashboard controls and the SOS overlay.
type SafetyHandler struct {
	dispatcherUC usecase.DispatcherUsecase
	monitoringUC usecase.MonitoringUsecase
	locationUC   usecase.LocationUsecase
	voiceUC      usecase.VoiceUsecase
	dashboardUC  usecase.DashboardUsecase
	dialer       service.Dialer
	logger       *slog.Logger
	now          func() time.Time
}

// NewSafetyHandler is the constructor for SafetyHandler
func NewSafetyHandler(params SafetyHandlerParams) *SafetyHandler {
	return &SafetyHandler{
		dispatcherUC: params.DispatcherUC,
		monitoringUC: params.MonitoringUC,
		locationUC:   params.LocationUC,
		voiceUC:      params.VoiceUC,
		dashboardUC:  params.DashboardUC,
		dialer:       params.Dialer,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// TriggerSOSRequest optionally names the trigger. It defaults to MANUAL.
type TriggerSOSRequest struct {
	Type string `json:"type" validate:"omitempty,oneof=FALL VOICE MANUAL SHAKE"`
}

// ToggleResponse reports the armed state after a toggle.
type ToggleResponse struct {
	Armed  bool                `json:"armed"`
	Status entity.SafetyStatus `json:"status"`
}

// TriggerResponse reports the outcome of a trigger request.
type TriggerResponse struct {
	Triggered bool                  `json:"triggered"`
	Alert     *entity.AlertLogEntry `json:"alert,omitempty"`
}

func (h *SafetyHandler) Dashboard(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dashboardUC.Dashboard(c.Request().Context()), "")
}

// ToggleMonitoring arms or disarms the sentries.
func (h *SafetyHandler) ToggleMonitoring(c echo.Context) error {
	armed, err := h.monitoringUC.Toggle(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Monitoring disarmed"
	if armed {
		message = "Monitoring armed"
	}

	return response.Success(c, http.StatusOK, ToggleResponse{Armed: armed, Status: h.dispatcherUC.Status()}, message)
}

// RefreshLocation requests a fresh one-shot fix.
func (h *SafetyHandler) RefreshLocation(c echo.Context) error {
	fix, err := h.locationUC.Refresh(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, fix, "Location updated")
}

// StartVoice opens the voice sentry. Monitoring must be armed.
func (h *SafetyHandler) StartVoice(c echo.Context) error {
	if !h.monitoringUC.Armed() {
		return errors.WithStack(domainerrors.ErrMonitoringNotArmed)
	}

	if err := h.voiceUC.Start(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.voiceUC.Snapshot(), "Voice sentry started")
}

func (h *SafetyHandler) StopVoice(c echo.Context) error {
	h.voiceUC.Stop()

	return response.Success(c, http.StatusOK, h.voiceUC.Snapshot(), "Voice sentry stopped")
}

// TriggerSOS raises an alert on the user's request. A suppressed request still answers 200.
func (h *SafetyHandler) TriggerSOS(c echo.Context) error {
	var req TriggerSOSRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid SOS input")
		}
		if err := c.Validate(&req); err != nil {
			return errors.WithStack(err)
		}
	}

	alertType := entity.AlertTypeManual
	if req.Type != "" {
		alertType = entity.AlertType(req.Type)
	}

	entry, triggered := h.dispatcherUC.TriggerSOS(c.Request().Context(), alertType)
	if !triggered {
		return response.Success(c, http.StatusOK, TriggerResponse{}, "SOS already active")
	}

	return response.Success(c, http.StatusCreated, TriggerResponse{Triggered: true, Alert: entry}, "SOS triggered")
}

// Overlay reports the countdown of the active alert.
func (h *SafetyHandler) Overlay(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatcherUC.Overlay(h.now()), "")
}

// DialEmergency asks the phone to call the emergency number.
func (h *SafetyHandler) DialEmergency(c echo.Context) error {
	number := h.dispatcherUC.Overlay(h.now()).EmergencyNumber

	if err := h.dialer.Dial(c.Request().Context(), number); err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Warn("Emergency call requested", slog.String("number", number))

	return response.Success(c, http.StatusOK, map[string]string{"number": number}, "Dialing emergency services")
}

// Dismiss clears the active alert and returns to SECURE.
func (h *SafetyHandler) Dismiss(c echo.Context) error {
	h.dispatcherUC.ResetStatus(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]entity.SafetyStatus{"status": h.dispatcherUC.Status()}, "Alert dismissed")
}
