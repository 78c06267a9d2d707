package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"auto_frota_go/config"
	"auto_frota_go/db"
	"auto_frota_go/middleware"
	"auto_frota_go/models"
	"auto_frota_go/services"
	"auto_frota_go/templates"

	"github.com/labstack/echo/v4"
)

// Package level variable to hold the dummy hash for timing mitigation
var globalDummyHash = "$2a$10$X7.G.t8./.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t.t" // Fallback

func init() {
	// Generate a real dummy hash at startup to ensure consistent timing
	// We ignore error here as it should not fail in normal operation
	hash, _ := services.HashPassword("dummy_password_for_timing_mitigation")
	if hash != "" {
		globalDummyHash = hash
	}
}

// LoginHandler renders the login page
func LoginHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", templates.LoginView{
		CSRFToken: middleware.GetCSRFToken(c),
		Message:   c.QueryParam("msg"),
	})
}

// LoginPostHandler handles the login form submission. Bad credentials
// re-render the form with a message; nothing distinguishes an unknown email
// from a wrong password.
func LoginPostHandler(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	renderError := func(msg string) error {
		return c.Render(http.StatusOK, "login.html", templates.LoginView{
			CSRFToken: middleware.GetCSRFToken(c),
			Error:     msg,
		})
	}

	if email == "" || password == "" {
		return renderError("Informe e-mail e senha.")
	}

	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		// Timing attack mitigation: always run a bcrypt verify
		services.VerifyPassword(globalDummyHash, password)
		return renderError("E-mail ou senha inválidos.")
	}

	if !services.VerifyPassword(user.Password, password) {
		services.LogSecurityEvent("login_failed", user.ID, "invalid password")
		return renderError("E-mail ou senha inválidos.")
	}

	if !user.IsActive {
		return renderError("Esta conta foi desativada.")
	}

	session, err := services.CreateSession(db.DB, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	cfg := c.Get("config").(*config.Config)
	isProduction := cfg.Environment == "production"

	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(services.DefaultSessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)

	// Update last login time
	now := time.Now()
	user.LastLoginAt = &now
	db.DB.Save(&user)

	return c.Redirect(http.StatusSeeOther, "/dashboard/")
}

// LogoutHandler clears the session and sends the operator back to the login
// page.
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if err := services.DeleteSession(db.DB, cookie.Value); err != nil {
			c.Logger().Errorf("failed to delete session: %v", err)
		}
	}

	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/?msg="+url.QueryEscape("Sessão encerrada."))
}
