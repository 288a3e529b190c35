// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guardian/internal/delivery/http/middleware"
	"guardian/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	ContactHandler *handler.ContactHandler
	ProfileHandler *handler.ProfileHandler
	AlertHandler   *handler.AlertHandler
	SafetyHandler  *handler.SafetyHandler
	StreamHandler  *handler.StreamHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	session *handler.SessionHandler
	contact *handler.ContactHandler
	profile *handler.ProfileHandler
	alert   *handler.AlertHandler
	safety  *handler.SafetyHandler
	stream  *handler.StreamHandler
	health  *handler.HealthHandler
	auth    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		session: params.SessionHandler,
		contact: params.ContactHandler,
		profile: params.ProfileHandler,
		alert:   params.AlertHandler,
		safety:  params.SafetyHandler,
		stream:  params.StreamHandler,
		health:  params.HealthHandler,
		auth:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.health.HealthCheck)
	e.GET("/metrics", r.health.Metrics)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/otp", r.session.RequestOTP)
		authGroup.POST("/login", r.session.Login)
		authGroup.POST("/logout", r.session.Logout, r.auth.Authenticate)
	}

	// Streams authenticate with a query token as well.
	e.GET("/events", r.stream.Events, r.auth.AuthenticateStream)
	e.GET("/device/ws", r.stream.DeviceSocket, r.auth.AuthenticateStream)

	// Routes are guarded one by one so unknown paths still answer 404.
	auth := r.auth.Authenticate
	e.GET("/contacts", r.contact.ListContacts, auth)
	e.POST("/contacts", r.contact.AddContact, auth)
	e.DELETE("/contacts/:id", r.contact.RemoveContact, auth)

	e.GET("/profile", r.profile.GetProfile, auth)
	e.PUT("/profile", r.profile.UpdateProfile, auth)
	e.GET("/profile/qrcode", r.profile.MedicalIDCard, auth)

	e.GET("/alerts", r.alert.ListAlerts, auth)
	e.DELETE("/alerts", r.alert.ClearAlerts, auth)
	e.GET("/alerts/geojson", r.alert.AlertMap, auth)

	e.GET("/dashboard", r.safety.Dashboard, auth)
	e.POST("/monitoring/toggle", r.safety.ToggleMonitoring, auth)
	e.POST("/location/refresh", r.safety.RefreshLocation, auth)
	e.POST("/voice/start", r.safety.StartVoice, auth)
	e.POST("/voice/stop", r.safety.StopVoice, auth)

	e.POST("/sos", r.safety.TriggerSOS, auth)
	e.GET("/sos/overlay", r.safety.Overlay, auth)
	e.POST("/sos/dial", r.safety.DialEmergency, auth)
	e.POST("/sos/dismiss", r.safety.Dismiss, auth)
}
