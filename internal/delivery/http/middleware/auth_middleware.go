package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "fleetdesk/internal/delivery/context"
	"fleetdesk/internal/delivery/http/response"
	"fleetdesk/internal/domain/service"
)

// AuthMiddleware resolves the caller identity from the bearer token and
// stores the profile on the request context.
type AuthMiddleware struct {
	identity service.IdentityService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityService) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate validates the session token and attaches the caller profile.
// A valid session whose directory profile is missing is still rejected; the
// engine needs a profile, not just a token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_CONTEXT_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTH_CONTEXT_MISSING", "Invalid token format, must be Bearer token")
		}

		profile, err := m.identity.ResolveCaller(c.Request().Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrProfileMissing) {
				return response.Unauthorized(c, "CALLER_PROFILE_MISSING", "No profile exists for this session")
			}

			return response.Unauthorized(c, "AUTH_CONTEXT_MISSING", "Invalid or expired session")
		}

		deliverycontext.SetCaller(c, profile)

		return next(c)
	}
}
