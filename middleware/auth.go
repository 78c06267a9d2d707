package middleware

import (
	"net/http"

	"auto_frota_go/config"
	"auto_frota_go/db"
	"auto_frota_go/models"
	"auto_frota_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "auto_frota_session"
	// ContextKeyUser is the context key for the authenticated user
	ContextKeyUser = "user"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
)

// RequireAuth is middleware that requires authentication. Unauthenticated
// requests are redirected to the login page rather than answered with an
// error code.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get session cookie
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				// No cookie, redirect to login
				return c.Redirect(http.StatusSeeOther, "/")
			}

			// Validate session
			session, err := services.ValidateSession(db.DB, cookie.Value)
			if err != nil {
				// Invalid or expired session, clear cookie and redirect
				ClearSessionCookie(c)
				return c.Redirect(http.StatusSeeOther, "/")
			}

			// Check if user is active
			if !session.User.IsActive {
				ClearSessionCookie(c)
				return c.Redirect(http.StatusSeeOther, "/")
			}

			// Store user and session in the request-scoped context; handlers
			// read identity from here, never from globals.
			c.Set(ContextKeyUser, &session.User)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// GetCurrentUser retrieves the current user from context
func GetCurrentUser(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// ClearSessionCookie clears the session cookie
func ClearSessionCookie(c echo.Context) {
	// Get config to check environment
	var isProduction bool
	if cfg, ok := c.Get("config").(*config.Config); ok {
		isProduction = cfg.Environment == "production"
	}

	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
}
