package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"auto_frota_go/models"
	"auto_frota_go/services"

	"github.com/stretchr/testify/assert"
)

func TestRegistrarEmpresaPostHandler(t *testing.T) {
	t.Run("Valid submission creates and redirects", func(t *testing.T) {
		testDB := setupTestDB(t)

		form := url.Values{}
		form.Set("razao_social", "Transportes Alfa Ltda")
		form.Set("cnpj", "12345678000199")
		_, c, rec := setupEcho(http.MethodPost, "/veiculos/empresa/registrar", form)

		err := RegistrarEmpresaPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)

		var empresa models.Empresa
		assert.NoError(t, testDB.First(&empresa, "razao_social = ?", "Transportes Alfa Ltda").Error)
		assert.Equal(t, "12.345.678/0001-99", empresa.CNPJ)
	})

	t.Run("Malformed CNPJ re-renders with the typed values", func(t *testing.T) {
		testDB := setupTestDB(t)

		form := url.Values{}
		form.Set("razao_social", "Transportes Beta Ltda")
		form.Set("cnpj", "123")
		_, c, rec := setupEcho(http.MethodPost, "/veiculos/empresa/registrar", form)

		err := RegistrarEmpresaPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "CNPJ inválido: informe 14 dígitos.")
		assert.Contains(t, rec.Body.String(), "Transportes Beta Ltda")

		var count int64
		testDB.Model(&models.Empresa{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Duplicate razão social re-renders with a message", func(t *testing.T) {
		testDB := setupTestDB(t)
		_, err := services.CreateEmpresa(testDB, "Transportes Gama", "12345678000199")
		assert.NoError(t, err)

		form := url.Values{}
		form.Set("razao_social", "Transportes Gama")
		form.Set("cnpj", "98765432000188")
		_, c, rec := setupEcho(http.MethodPost, "/veiculos/empresa/registrar", form)

		err = RegistrarEmpresaPostHandler(c)
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "Já existe uma empresa com essa razão social.")
	})
}

func TestListarEmpresasHandler(t *testing.T) {
	testDB := setupTestDB(t)
	_, err := services.CreateEmpresa(testDB, "Logística Zeta", "11111111000111")
	assert.NoError(t, err)
	_, err = services.CreateEmpresa(testDB, "Agro Brasil SA", "22222222000122")
	assert.NoError(t, err)

	t.Run("Lists all companies", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/veiculos/empresas/lista", nil)
		err := ListarEmpresasHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Logística Zeta")
		assert.Contains(t, rec.Body.String(), "Agro Brasil SA")
	})

	t.Run("Search filters and shows the query message", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/veiculos/empresas/lista?q=zeta", nil)
		err := ListarEmpresasHandler(c)
		assert.NoError(t, err)
		body := rec.Body.String()
		assert.Contains(t, body, "Logística Zeta")
		assert.NotContains(t, body, "Agro Brasil SA")
		assert.Contains(t, body, "Exibindo resultados para a busca: &#39;zeta&#39;")
	})
}

func TestExcluirEmpresaHandlers(t *testing.T) {
	testDB := setupTestDB(t)
	empresa := createHandlerTestEmpresa(t, testDB)
	veiculo := createHandlerTestVeiculo(t, testDB, empresa.ID, "AAA-1111", "9BWZZZ377VT004201", "12345678901")

	sinistro, err := services.CreateSinistro(testDB, services.SinistroInput{
		VeiculoID:      veiculo.ID,
		DataSinistro:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		TipoSinistro:   models.TipoSinistroColisao,
		Descricao:      "Batida leve.",
		StatusSinistro: models.StatusSinistroEmAnalise,
	})
	assert.NoError(t, err)

	t.Run("GET renders the confirmation with the cascade warning", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/veiculos/empresas/excluir/"+empresa.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(empresa.ID)

		err := ExcluirEmpresaHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), empresa.RazaoSocial)
		assert.Contains(t, rec.Body.String(), "também serão excluídos")
	})

	t.Run("POST deletes company, vehicles and claims", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/veiculos/empresas/excluir/"+empresa.ID, url.Values{})
		c.SetParamNames("id")
		c.SetParamValues(empresa.ID)

		err := ExcluirEmpresaPostHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)

		var count int64
		testDB.Model(&models.Empresa{}).Where("id = ?", empresa.ID).Count(&count)
		assert.Equal(t, int64(0), count)
		testDB.Model(&models.Veiculo{}).Where("id = ?", veiculo.ID).Count(&count)
		assert.Equal(t, int64(0), count)
		testDB.Model(&models.Sinistro{}).Where("id = ?", sinistro.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Unknown company renders the not-found page", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/veiculos/empresas/excluir/nope", nil)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		err := ExcluirEmpresaHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
