package context

import (
	"github.com/labstack/echo/v4"

	"fleetdesk/internal/domain/service"
)

// KeyCaller is the key for storing the resolved caller profile in
// echo.Context.
const KeyCaller ContextKey = "caller"

// GetCaller extracts the resolved caller profile from echo.Context. A nil
// result means the request carried no valid session.
func GetCaller(c echo.Context) *service.CallerProfile {
	if profile, ok := c.Get(string(KeyCaller)).(*service.CallerProfile); ok {
		return profile
	}

	return nil
}

// SetCaller stores the resolved caller profile in echo.Context.
func SetCaller(c echo.Context, profile *service.CallerProfile) {
	c.Set(string(KeyCaller), profile)
}
