package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"auto_frota_go/db"
	"auto_frota_go/middleware"
	"auto_frota_go/services"
	"auto_frota_go/templates"

	"github.com/labstack/echo/v4"
)

// RegistrarEmpresaHandler renders the company registration form
func RegistrarEmpresaHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "empresa_form.html", templates.EmpresaFormView{
		CSRFToken: middleware.GetCSRFToken(c),
	})
}

// RegistrarEmpresaPostHandler handles the company registration submission.
// On a validation failure the form re-renders with the typed values and the
// store is left untouched.
func RegistrarEmpresaPostHandler(c echo.Context) error {
	razaoSocial := c.FormValue("razao_social")
	cnpj := c.FormValue("cnpj")

	renderError := func(msg string) error {
		return c.Render(http.StatusOK, "empresa_form.html", templates.EmpresaFormView{
			CSRFToken:   middleware.GetCSRFToken(c),
			Error:       msg,
			RazaoSocial: razaoSocial,
			CNPJ:        cnpj,
		})
	}

	if razaoSocial == "" || cnpj == "" {
		return renderError("Erro ao registrar empresa. Verifique os campos.")
	}

	_, err := services.CreateEmpresa(db.DB, razaoSocial, cnpj)
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther,
			"/veiculos/empresas/lista/?msg="+url.QueryEscape("Empresa registrada com sucesso!"))
	case errors.Is(err, services.ErrInvalidFormat):
		return renderError("CNPJ inválido: informe 14 dígitos.")
	case errors.Is(err, services.ErrRazaoSocialTaken):
		return renderError("Já existe uma empresa com essa razão social.")
	case errors.Is(err, services.ErrCNPJTaken):
		return renderError("Já existe uma empresa com esse CNPJ.")
	default:
		c.Logger().Errorf("failed to create empresa: %v", err)
		return renderError("Erro ao registrar empresa. Verifique os campos.")
	}
}

// ListarEmpresasHandler renders the company list, optionally filtered by a
// search query.
func ListarEmpresasHandler(c echo.Context) error {
	query := c.QueryParam("q")

	empresas, err := services.SearchEmpresas(db.DB, query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list empresas")
	}

	message := c.QueryParam("msg")
	if query != "" {
		message = fmt.Sprintf("Exibindo resultados para a busca: '%s'", query)
	}

	return c.Render(http.StatusOK, "empresas_lista.html", templates.EmpresaListaView{
		CSRFToken: middleware.GetCSRFToken(c),
		Query:     query,
		Empresas:  empresas,
		Total:     len(empresas),
		Message:   message,
	})
}

// ExcluirEmpresaHandler renders the delete-confirmation page. The deletion
// itself only happens on POST.
func ExcluirEmpresaHandler(c echo.Context) error {
	empresa, err := services.GetEmpresaByID(db.DB, c.Param("id"))
	if err != nil {
		return renderNotFound(c, "Empresa não encontrada.")
	}

	return c.Render(http.StatusOK, "confirmar_exclusao.html", templates.ConfirmarExclusaoView{
		CSRFToken: middleware.GetCSRFToken(c),
		Action:    "/veiculos/empresas/excluir/" + empresa.ID + "/",
		Titulo:    "Excluir Empresa",
		Detalhe:   fmt.Sprintf("Excluir permanentemente a empresa %s (%s)?", empresa.RazaoSocial, empresa.CNPJ),
		Aviso:     "Todos os veículos da empresa e seus sinistros também serão excluídos. Esta ação é permanente.",
	})
}

// ExcluirEmpresaPostHandler permanently deletes the company, cascading to its
// vehicles and their claims.
func ExcluirEmpresaPostHandler(c echo.Context) error {
	empresa, err := services.GetEmpresaByID(db.DB, c.Param("id"))
	if err != nil {
		return renderNotFound(c, "Empresa não encontrada.")
	}

	if err := services.DeleteEmpresa(db.DB, empresa.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete empresa")
	}

	return c.Redirect(http.StatusSeeOther, "/veiculos/empresas/lista/?msg="+
		url.QueryEscape(fmt.Sprintf("Empresa %s excluída permanentemente.", empresa.RazaoSocial)))
}

// renderNotFound renders the shared not-found page with a 404 status.
func renderNotFound(c echo.Context, detalhe string) error {
	return c.Render(http.StatusNotFound, "not_found.html", echo.Map{"Detalhe": detalhe})
}
