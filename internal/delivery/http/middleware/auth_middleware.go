// Package middleware holds the echo middleware of the API server.
package middleware

import (
	"net/http"
	"strings"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/delivery/http/response"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix    = "Bearer "
	tokenQueryParam = "token"
	sessionTokenKey = "session_token"
)

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate validates the Bearer token and rejects revoked sessions.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false)
}

// AuthenticateStream also accepts the token as a query parameter, for EventSource and WebSocket clients that cannot set headers.
func (m *AuthMiddleware) AuthenticateStream(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, true)
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, allowQuery bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request())
		if !ok && allowQuery {
			token = c.QueryParam(tokenQueryParam)
			ok = token != ""
		}
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing or malformed")
		}

		claims, err := m.sessionUC.ValidateSession(token)
		if err != nil {
			return err
		}

		deliverycontext.BindSession(c, claims.Phone)
		c.Set(sessionTokenKey, token)

		return next(c)
	}
}

// SessionToken returns the token accepted by Authenticate.
func SessionToken(c echo.Context) string {
	token, _ := c.Get(sessionTokenKey).(string)

	return token
}

func bearerToken(req *http.Request) (string, bool) {
	header := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}
