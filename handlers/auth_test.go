package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"auto_frota_go/middleware"
	"auto_frota_go/models"
	"auto_frota_go/services"

	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	err := LoginHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "E-mail")
}

func TestLoginPostHandler(t *testing.T) {
	t.Run("Valid credentials create a session and redirect", func(t *testing.T) {
		testDB := setupTestDB(t)
		user := createHandlerTestUser(t, testDB, "operador@example.com", "senha-segura")

		form := url.Values{}
		form.Set("email", "operador@example.com")
		form.Set("password", "senha-segura")
		_, c, rec := setupEcho(http.MethodPost, "/", form)

		err := LoginPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard/", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		var sessionValue string
		for _, cookie := range cookies {
			if cookie.Name == middleware.SessionCookieName {
				sessionValue = cookie.Value
			}
		}
		assert.NotEmpty(t, sessionValue)

		session, err := services.ValidateSession(testDB, sessionValue)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, session.UserID)
	})

	t.Run("Wrong password re-renders the form", func(t *testing.T) {
		testDB := setupTestDB(t)
		createHandlerTestUser(t, testDB, "operador@example.com", "senha-segura")

		form := url.Values{}
		form.Set("email", "operador@example.com")
		form.Set("password", "senha-errada")
		_, c, rec := setupEcho(http.MethodPost, "/", form)

		err := LoginPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "E-mail ou senha inválidos.")
	})

	t.Run("Unknown email gets the same message", func(t *testing.T) {
		setupTestDB(t)

		form := url.Values{}
		form.Set("email", "ninguem@example.com")
		form.Set("password", "qualquer")
		_, c, rec := setupEcho(http.MethodPost, "/", form)

		err := LoginPostHandler(c)
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "E-mail ou senha inválidos.")
	})

	t.Run("Inactive account is rejected", func(t *testing.T) {
		testDB := setupTestDB(t)
		user := createHandlerTestUser(t, testDB, "inativo@example.com", "senha-segura")
		assert.NoError(t, testDB.Model(user).Update("is_active", false).Error)

		form := url.Values{}
		form.Set("email", "inativo@example.com")
		form.Set("password", "senha-segura")
		_, c, rec := setupEcho(http.MethodPost, "/", form)

		err := LoginPostHandler(c)
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "Esta conta foi desativada.")
	})

	t.Run("Missing fields re-render the form", func(t *testing.T) {
		setupTestDB(t)

		_, c, rec := setupEcho(http.MethodPost, "/", url.Values{})
		err := LoginPostHandler(c)
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "Informe e-mail e senha.")
	})
}

func TestLogoutHandler(t *testing.T) {
	testDB := setupTestDB(t)
	user := createHandlerTestUser(t, testDB, "operador@example.com", "senha-segura")

	session, err := services.CreateSession(testDB, user.ID, "127.0.0.1", "test-agent")
	assert.NoError(t, err)

	_, c, rec := setupEcho(http.MethodGet, "/logout", nil)
	c.Request().AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: session.Token})

	err = LogoutHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	var count int64
	testDB.Model(&models.Session{}).Where("token = ?", session.Token).Count(&count)
	assert.Equal(t, int64(0), count)
}
