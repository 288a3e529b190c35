package context

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
)

// visiblePhoneDigits is how many trailing digits of a phone survive masking in logs.
const visiblePhoneDigits = 4

// BindSession attaches the authenticated phone to the echo.Context and the request context.
// The request-scoped logger gains the masked phone so every record of an SOS names its user.
func BindSession(c echo.Context, phone string) {
	c.Set(string(KeySessionPhone), phone)

	req := c.Request()
	ctx := WithSessionPhone(req.Context(), phone)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("session", MaskPhone(phone))))
	}
	c.SetRequest(req.WithContext(ctx))
}

// GetSessionPhone returns the phone bound by the auth middleware, or an empty string.
func GetSessionPhone(c echo.Context) string {
	phone, _ := c.Get(string(KeySessionPhone)).(string)

	return phone
}

// WithSessionPhone returns a new context carrying the session phone.
func WithSessionPhone(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, KeySessionPhone, phone)
}

// GetSessionPhoneFromContext returns the session phone, or an empty string outside an authenticated request.
func GetSessionPhoneFromContext(ctx context.Context) string {
	phone, _ := ctx.Value(KeySessionPhone).(string)

	return phone
}

// MaskPhone hides all but the last digits of a phone number.
func MaskPhone(phone string) string {
	if len(phone) <= visiblePhoneDigits {
		return strings.Repeat("*", len(phone))
	}

	return strings.Repeat("*", len(phone)-visiblePhoneDigits) + phone[len(phone)-visiblePhoneDigits:]
}
