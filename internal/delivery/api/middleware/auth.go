package middleware

import (
	"log/slog"
	"strings"

	"crm/internal/delivery/api/response"
	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies bearer tokens with the identity provider.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects requests without a valid bearer token and stores the
// caller's user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifyIDToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(deliverycontext.KeyUserID, identity.UserID)
		c.Set(deliverycontext.KeyIdentity, identity)

		return next(c)
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(deliverycontext.KeyUserID).(string)

	return userID, ok && userID != ""
}

// GetIdentity returns the verified identity set by Authenticate.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(deliverycontext.KeyIdentity).(*service.Identity)

	return identity, ok
}
