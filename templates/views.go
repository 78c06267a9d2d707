package templates

import (
	"auto_frota_go/models"
)

// LoginView backs the login page.
type LoginView struct {
	CSRFToken string
	Error     string
	Message   string
}

// DashboardView backs the dashboard page: active-vehicle count plus the
// expiration alert list.
type DashboardView struct {
	CSRFToken          string
	UserName           string
	QuantidadeVeiculos int64
	Alertas            []models.Veiculo
	TotalAlertas       int64
}

// EmpresaFormView backs the company registration form.
type EmpresaFormView struct {
	CSRFToken   string
	Error       string
	RazaoSocial string
	CNPJ        string
}

// EmpresaListaView backs the company listing/search page.
type EmpresaListaView struct {
	CSRFToken string
	Query     string
	Empresas  []models.Empresa
	Total     int
	Message   string
}

// ConfirmarExclusaoView backs the delete-confirmation pages for all three
// entities; Action is the POST target.
type ConfirmarExclusaoView struct {
	CSRFToken string
	Action    string
	Titulo    string
	Detalhe   string
	Aviso     string
}

// VeiculoFormValues holds the raw (string) form values so a rejected
// submission re-renders with what the operator typed.
type VeiculoFormValues struct {
	EmpresaID            string
	Marca                string
	Modelo               string
	Placa                string
	Chassi               string
	Renavam              string
	AnoFabricacao        string
	AnoModelo            string
	ZeroKm               bool
	NomeCondutor         string
	ClasseBonus          string
	Seguradora           string
	Franquia             string
	DataVencimentoSeguro string
}

// VeiculoFormView backs both the registration and the edit form.
type VeiculoFormView struct {
	CSRFToken    string
	Titulo       string
	Action       string
	Error        string
	Empresas     []models.Empresa
	Marcas       []models.Choice
	Seguradoras  []models.Choice
	ClassesBonus []int
	Values       VeiculoFormValues
}

// VeiculoListaView backs the vehicle listing/search page.
type VeiculoListaView struct {
	CSRFToken string
	Query     string
	Veiculos  []models.Veiculo
	Total     int
	Message   string
}

// SinistroFormValues holds the raw form values for claim registration.
type SinistroFormValues struct {
	VeiculoID      string
	DataSinistro   string
	TipoSinistro   string
	Descricao      string
	StatusSinistro string
}

// SinistroFormView backs the claim registration form.
type SinistroFormView struct {
	CSRFToken string
	Error     string
	Veiculos  []models.Veiculo
	Tipos     []models.Choice
	Status    []models.Choice
	Values    SinistroFormValues
}

// SinistroListaView backs the claim listing/search page.
type SinistroListaView struct {
	CSRFToken string
	Query     string
	Sinistros []models.Sinistro
	Total     int
	Message   string
}

// BonusClasses lists the selectable bonus classes (0..10) for the vehicle form.
func BonusClasses() []int {
	classes := make([]int, 0, models.ClasseBonusMax+1)
	for i := models.ClasseBonusMin; i <= models.ClasseBonusMax; i++ {
		classes = append(classes, i)
	}
	return classes
}
