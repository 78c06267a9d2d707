package handlers

import (
	"net/http"
	"time"

	"auto_frota_go/db"
	"auto_frota_go/middleware"
	"auto_frota_go/services"
	"auto_frota_go/templates"

	"github.com/labstack/echo/v4"
)

// DashboardHandler renders the main dashboard: the active-vehicle count and
// the list of insurances expiring within the 60-day alert window.
func DashboardHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)

	quantidade, err := services.CountVeiculosAtivos(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	alertas, totalAlertas, err := services.VeiculosComSeguroAVencer(db.DB, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	return c.Render(http.StatusOK, "dashboard.html", templates.DashboardView{
		CSRFToken:          middleware.GetCSRFToken(c),
		UserName:           user.Name,
		QuantidadeVeiculos: quantidade,
		Alertas:            alertas,
		TotalAlertas:       totalAlertas,
	})
}
