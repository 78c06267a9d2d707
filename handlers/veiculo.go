package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"auto_frota_go/db"
	"auto_frota_go/middleware"
	"auto_frota_go/models"
	"auto_frota_go/services"
	"auto_frota_go/templates"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// veiculoFormValues captures the raw submission so a rejected form re-renders
// with what the operator typed.
func veiculoFormValues(c echo.Context) templates.VeiculoFormValues {
	return templates.VeiculoFormValues{
		EmpresaID:            c.FormValue("empresa_id"),
		Marca:                c.FormValue("marca"),
		Modelo:               c.FormValue("modelo"),
		Placa:                c.FormValue("placa"),
		Chassi:               c.FormValue("chassi"),
		Renavam:              c.FormValue("renavam"),
		AnoFabricacao:        c.FormValue("ano_fabricacao"),
		AnoModelo:            c.FormValue("ano_modelo"),
		ZeroKm:               c.FormValue("zero_km") == "true",
		NomeCondutor:         c.FormValue("nome_condutor"),
		ClasseBonus:          c.FormValue("classe_bonus"),
		Seguradora:           c.FormValue("seguradora"),
		Franquia:             c.FormValue("franquia"),
		DataVencimentoSeguro: c.FormValue("data_vencimento_seguro"),
	}
}

// veiculoInputFromValues converts the raw form values into a service input.
// Any parse failure maps to the generic verify-the-fields message.
func veiculoInputFromValues(v templates.VeiculoFormValues) (services.VeiculoInput, error) {
	anoFabricacao, err := strconv.Atoi(v.AnoFabricacao)
	if err != nil {
		return services.VeiculoInput{}, fmt.Errorf("invalid ano de fabricação: %w", err)
	}
	anoModelo, err := strconv.Atoi(v.AnoModelo)
	if err != nil {
		return services.VeiculoInput{}, fmt.Errorf("invalid ano do modelo: %w", err)
	}
	classeBonus, err := strconv.Atoi(v.ClasseBonus)
	if err != nil {
		return services.VeiculoInput{}, fmt.Errorf("invalid classe de bônus: %w", err)
	}

	// Accept the Brazilian decimal comma on the deductible field
	franquia, err := decimal.NewFromString(strings.ReplaceAll(v.Franquia, ",", "."))
	if err != nil {
		return services.VeiculoInput{}, fmt.Errorf("invalid franquia: %w", err)
	}

	vencimento, err := services.ParseDate(v.DataVencimentoSeguro)
	if err != nil {
		return services.VeiculoInput{}, err
	}

	return services.VeiculoInput{
		EmpresaID:            v.EmpresaID,
		Marca:                v.Marca,
		Modelo:               v.Modelo,
		Placa:                v.Placa,
		Chassi:               v.Chassi,
		Renavam:              v.Renavam,
		AnoFabricacao:        anoFabricacao,
		AnoModelo:            anoModelo,
		ZeroKm:               v.ZeroKm,
		NomeCondutor:         v.NomeCondutor,
		ClasseBonus:          classeBonus,
		Seguradora:           v.Seguradora,
		Franquia:             franquia,
		DataVencimentoSeguro: vencimento,
	}, nil
}

// Generic verify-the-fields messages, one per flow.
const (
	registrarVeiculoErro = "Erro ao registrar veículo. Verifique os campos."
	atualizarVeiculoErro = "Erro ao atualizar veículo. Verifique os campos."
)

// veiculoErrorMessage maps service errors to the form message. Anything not
// recognized, including a uniqueness race lost at the index, gets the flow's
// generic verify-the-fields message.
func veiculoErrorMessage(err error, generic string) string {
	switch {
	case errors.Is(err, services.ErrPlacaTaken):
		return "Já existe um veículo com essa placa."
	case errors.Is(err, services.ErrChassiTaken):
		return "Já existe um veículo com esse chassi."
	case errors.Is(err, services.ErrRenavamTaken):
		return "Já existe um veículo com esse renavam."
	case errors.Is(err, services.ErrInvalidFormat):
		return "Formato inválido: " + err.Error()
	default:
		return generic
	}
}

func renderVeiculoForm(c echo.Context, titulo, action, errMsg string, values templates.VeiculoFormValues) error {
	empresas, err := services.ListEmpresas(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load empresas")
	}

	return c.Render(http.StatusOK, "veiculo_form.html", templates.VeiculoFormView{
		CSRFToken:    middleware.GetCSRFToken(c),
		Titulo:       titulo,
		Action:       action,
		Error:        errMsg,
		Empresas:     empresas,
		Marcas:       models.MarcaChoices,
		Seguradoras:  models.SeguradoraChoices,
		ClassesBonus: templates.BonusClasses(),
		Values:       values,
	})
}

// RegistrarVeiculoHandler renders an empty vehicle registration form
func RegistrarVeiculoHandler(c echo.Context) error {
	return renderVeiculoForm(c, "Registrar Veículo", "/veiculos/registrar/", "",
		templates.VeiculoFormValues{ClasseBonus: "0"})
}

// RegistrarVeiculoPostHandler handles the vehicle registration submission
func RegistrarVeiculoPostHandler(c echo.Context) error {
	values := veiculoFormValues(c)

	input, err := veiculoInputFromValues(values)
	if err != nil {
		return renderVeiculoForm(c, "Registrar Veículo", "/veiculos/registrar/",
			registrarVeiculoErro, values)
	}

	if _, err := services.CreateVeiculo(db.DB, input); err != nil {
		return renderVeiculoForm(c, "Registrar Veículo", "/veiculos/registrar/",
			veiculoErrorMessage(err, registrarVeiculoErro), values)
	}

	return c.Redirect(http.StatusSeeOther, "/dashboard/")
}

// ListarVeiculosHandler renders the active-vehicle list, optionally filtered
// by a search query on plate, model or chassi.
func ListarVeiculosHandler(c echo.Context) error {
	query := c.QueryParam("q")

	veiculos, err := services.SearchVeiculosAtivos(db.DB, query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list veiculos")
	}

	message := c.QueryParam("msg")
	if query != "" {
		message = fmt.Sprintf("Exibindo resultados para a busca: '%s'", query)
	}

	return c.Render(http.StatusOK, "veiculos_lista.html", templates.VeiculoListaView{
		CSRFToken: middleware.GetCSRFToken(c),
		Query:     query,
		Veiculos:  veiculos,
		Total:     len(veiculos),
		Message:   message,
	})
}

// EditarVeiculoHandler renders the edit form prefilled with the stored values
func EditarVeiculoHandler(c echo.Context) error {
	veiculo, err := services.GetVeiculoByID(db.DB, c.Param("id"))
	if err != nil {
		return renderNotFound(c, "Veículo não encontrado.")
	}

	values := templates.VeiculoFormValues{
		EmpresaID:            veiculo.EmpresaID,
		Marca:                veiculo.Marca,
		Modelo:               veiculo.Modelo,
		Placa:                veiculo.Placa,
		Chassi:               veiculo.Chassi,
		Renavam:              veiculo.Renavam,
		AnoFabricacao:        strconv.Itoa(veiculo.AnoFabricacao),
		AnoModelo:            strconv.Itoa(veiculo.AnoModelo),
		ZeroKm:               veiculo.ZeroKm,
		NomeCondutor:         veiculo.NomeCondutor,
		ClasseBonus:          strconv.Itoa(veiculo.ClasseBonus),
		Seguradora:           veiculo.Seguradora,
		Franquia:             veiculo.Franquia.StringFixed(2),
		DataVencimentoSeguro: veiculo.DataVencimentoSeguro.Format("2006-01-02"),
	}

	return renderVeiculoForm(c, "Editar Veículo", "/veiculos/editar/"+veiculo.ID+"/", "", values)
}

// EditarVeiculoPostHandler handles the edit submission
func EditarVeiculoPostHandler(c echo.Context) error {
	id := c.Param("id")
	if _, err := services.GetVeiculoByID(db.DB, id); err != nil {
		return renderNotFound(c, "Veículo não encontrado.")
	}

	values := veiculoFormValues(c)
	action := "/veiculos/editar/" + id + "/"

	input, err := veiculoInputFromValues(values)
	if err != nil {
		return renderVeiculoForm(c, "Editar Veículo", action, atualizarVeiculoErro, values)
	}

	if _, err := services.UpdateVeiculo(db.DB, id, input); err != nil {
		return renderVeiculoForm(c, "Editar Veículo", action,
			veiculoErrorMessage(err, atualizarVeiculoErro), values)
	}

	return c.Redirect(http.StatusSeeOther, "/veiculos/lista/?msg="+
		url.QueryEscape("Veículo atualizado com sucesso!"))
}

// ExcluirVeiculoHandler renders the soft-delete confirmation page
func ExcluirVeiculoHandler(c echo.Context) error {
	veiculo, err := services.GetVeiculoByID(db.DB, c.Param("id"))
	if err != nil {
		return renderNotFound(c, "Veículo não encontrado.")
	}

	return c.Render(http.StatusOK, "confirmar_exclusao.html", templates.ConfirmarExclusaoView{
		CSRFToken: middleware.GetCSRFToken(c),
		Action:    "/veiculos/excluir/" + veiculo.ID + "/",
		Titulo:    "Desativar Veículo",
		Detalhe:   fmt.Sprintf("Desativar o veículo de placa %s (%s)?", veiculo.Placa, veiculo.Modelo),
		Aviso:     "O veículo deixa de aparecer nas listas e alertas; o registro e seus sinistros são mantidos.",
	})
}

// ExcluirVeiculoPostHandler performs the soft delete: the active flag flips
// to false, the row and its claims stay.
func ExcluirVeiculoPostHandler(c echo.Context) error {
	veiculo, err := services.DeactivateVeiculo(db.DB, c.Param("id"))
	if err != nil {
		return renderNotFound(c, "Veículo não encontrado.")
	}

	return c.Redirect(http.StatusSeeOther, "/veiculos/lista/?msg="+
		url.QueryEscape(fmt.Sprintf("Veículo com placa %s desativado com sucesso.", veiculo.Placa)))
}

// ExportarVeiculosHandler serves the active fleet as a spreadsheet download
func ExportarVeiculosHandler(c echo.Context) error {
	data, err := services.ExportVeiculosXLSX(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export veiculos")
	}

	filename := fmt.Sprintf("frota_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
