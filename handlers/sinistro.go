package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"auto_frota_go/db"
	"auto_frota_go/middleware"
	"auto_frota_go/models"
	"auto_frota_go/services"
	"auto_frota_go/templates"

	"github.com/labstack/echo/v4"
)

func renderSinistroForm(c echo.Context, errMsg string, values templates.SinistroFormValues) error {
	// Only active vehicles are offered for new claims
	veiculos, err := services.SearchVeiculosAtivos(db.DB, "")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load veiculos")
	}

	return c.Render(http.StatusOK, "sinistro_form.html", templates.SinistroFormView{
		CSRFToken: middleware.GetCSRFToken(c),
		Error:     errMsg,
		Veiculos:  veiculos,
		Tipos:     models.TipoSinistroChoices,
		Status:    models.StatusSinistroChoices,
		Values:    values,
	})
}

// RegistrarSinistroHandler renders an empty claim registration form
func RegistrarSinistroHandler(c echo.Context) error {
	return renderSinistroForm(c, "", templates.SinistroFormValues{
		TipoSinistro:   models.TipoSinistroColisao,
		StatusSinistro: models.StatusSinistroEmAnalise,
	})
}

// RegistrarSinistroPostHandler handles the claim registration submission
func RegistrarSinistroPostHandler(c echo.Context) error {
	values := templates.SinistroFormValues{
		VeiculoID:      c.FormValue("veiculo_id"),
		DataSinistro:   c.FormValue("data_sinistro"),
		TipoSinistro:   c.FormValue("tipo_sinistro"),
		Descricao:      c.FormValue("descricao"),
		StatusSinistro: c.FormValue("status_sinistro"),
	}

	dataSinistro, err := services.ParseDate(values.DataSinistro)
	if err != nil {
		return renderSinistroForm(c, "Erro ao registrar sinistro. Verifique os campos.", values)
	}

	_, err = services.CreateSinistro(db.DB, services.SinistroInput{
		VeiculoID:      values.VeiculoID,
		DataSinistro:   dataSinistro,
		TipoSinistro:   values.TipoSinistro,
		Descricao:      values.Descricao,
		StatusSinistro: values.StatusSinistro,
	})
	if err != nil {
		if errors.Is(err, services.ErrVeiculoNotFound) {
			return renderSinistroForm(c, "Selecione o veículo envolvido no sinistro.", values)
		}
		return renderSinistroForm(c, "Erro ao registrar sinistro. Verifique os campos.", values)
	}

	return c.Redirect(http.StatusSeeOther, "/sinistros/lista/?msg="+
		url.QueryEscape("Sinistro registrado com sucesso!"))
}

// ListarSinistrosHandler renders the claim list, most recent claim date
// first, optionally filtered by a search query. Claims on deactivated
// vehicles stay visible.
func ListarSinistrosHandler(c echo.Context) error {
	query := c.QueryParam("q")

	sinistros, err := services.SearchSinistros(db.DB, query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list sinistros")
	}

	message := c.QueryParam("msg")
	if query != "" {
		message = fmt.Sprintf("Exibindo resultados para a busca por sinistro: '%s'", query)
	}

	return c.Render(http.StatusOK, "sinistros_lista.html", templates.SinistroListaView{
		CSRFToken: middleware.GetCSRFToken(c),
		Query:     query,
		Sinistros: sinistros,
		Total:     len(sinistros),
		Message:   message,
	})
}

// ExcluirSinistroHandler renders the delete-confirmation page. Claim removal
// is permanent, unlike the vehicle soft delete.
func ExcluirSinistroHandler(c echo.Context) error {
	sinistro, err := services.GetSinistroByID(db.DB, c.Param("id"))
	if err != nil {
		return renderNotFound(c, "Sinistro não encontrado.")
	}

	return c.Render(http.StatusOK, "confirmar_exclusao.html", templates.ConfirmarExclusaoView{
		CSRFToken: middleware.GetCSRFToken(c),
		Action:    "/sinistros/excluir/" + sinistro.ID + "/",
		Titulo:    "Excluir Sinistro",
		Detalhe: fmt.Sprintf("Excluir o sinistro de %s do veículo %s?",
			sinistro.DataSinistro.Format("02/01/2006"), sinistro.Veiculo.Placa),
		Aviso: "Esta exclusão é permanente.",
	})
}

// ExcluirSinistroPostHandler permanently deletes the claim
func ExcluirSinistroPostHandler(c echo.Context) error {
	sinistro, err := services.GetSinistroByID(db.DB, c.Param("id"))
	if err != nil {
		return renderNotFound(c, "Sinistro não encontrado.")
	}

	if err := services.DeleteSinistro(db.DB, sinistro.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete sinistro")
	}

	return c.Redirect(http.StatusSeeOther, "/sinistros/lista/?msg="+
		url.QueryEscape(fmt.Sprintf("Sinistro do veículo %s excluído permanentemente.", sinistro.Veiculo.Placa)))
}
