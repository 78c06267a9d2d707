package middleware

import (
	"github.com/labstack/echo/v4"
)

// csrfContextKey is where Echo's CSRF middleware stores the request token.
const csrfContextKey = "csrf"

// GetCSRFToken returns the CSRF token for the current request, or an empty
// string outside the CSRF middleware (tests, background jobs). Every form
// template embeds it as the _csrf hidden field.
func GetCSRFToken(c echo.Context) string {
	if token, ok := c.Get(csrfContextKey).(string); ok {
		return token
	}
	return ""
}
