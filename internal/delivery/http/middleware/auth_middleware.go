package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates callers against the external identity
// provider and gates seller-only routes.
type AuthMiddleware struct {
	identity service.IdentityProvider
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, logger: logger}
}

// Authenticate validates the bearer token and stores the provider user id
// on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		userID, err := m.identity.VerifyToken(c.Request().Context(), tokenString)
		if err != nil || userID == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// RequireSeller allows only identities carrying the seller capability. It
// must run after Authenticate. A failed or ambiguous lookup denies.
func (m *AuthMiddleware) RequireSeller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := deliverycontext.GetUserID(c)
		if userID == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		}

		isSeller, err := m.identity.IsSeller(c.Request().Context(), userID)
		if err != nil {
			m.logger.Warn("Seller capability lookup failed",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)

			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		}
		if !isSeller {
			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		}

		return next(c)
	}
}
