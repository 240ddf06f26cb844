package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token. A missing header, a
// malformed token, a bad signature and an expired token are logged with
// their specific cause but all produce the same generic unauthorized
// response body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return m.reject(c, "authorization header missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return m.reject(c, "not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return m.reject(c, err.Error())
		}

		// Set the authenticated subject on the context for handlers to use.
		c.Set("subject", claims.Subject)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, reason string) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Warn("Request rejected",
		slog.String("path", c.Request().URL.Path),
		slog.String("reason", reason),
	)

	return errors.WithStack(domainerrors.ErrUnauthorized)
}
