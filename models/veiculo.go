package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MarcaChoices are the vehicle makes offered on the registration form.
var MarcaChoices = []Choice{
	{"chevrolet", "Chevrolet"},
	{"fiat", "Fiat"},
	{"ford", "Ford"},
	{"honda", "Honda"},
	{"hyundai", "Hyundai"},
	{"jeep", "Jeep"},
	{"mercedes-benz", "Mercedes-Benz"},
	{"mitsubishi", "Mitsubishi"},
	{"nissan", "Nissan"},
	{"peugeot", "Peugeot"},
	{"renault", "Renault"},
	{"toyota", "Toyota"},
	{"volkswagen", "Volkswagen"},
	{"volvo", "Volvo"},
	{"bmw", "BMW"},
	{"audi", "Audi"},
}

// SeguradoraChoices are the insurers the brokerage works with.
var SeguradoraChoices = []Choice{
	{"porto_seguro", "Porto Seguro"},
	{"bradesco_seguros", "Bradesco Seguros"},
	{"sulamerica", "SulAmérica"},
	{"tokio_marine", "Tokio Marine"},
	{"allianz", "Allianz"},
	{"liberty", "Liberty"},
	{"itau_seguros", "Itaú Seguros"},
	{"mapfre", "Mapfre"},
	{"zurich", "Zurich"},
	{"hdi", "HDI"},
	{"sompo", "Sompo"},
	{"alfa", "Alfa"},
	{"axa", "AXA"},
	{"azul_seguros", "Azul Seguros"},
}

const (
	// ClasseBonusMin and ClasseBonusMax bound the insurer bonus class.
	ClasseBonusMin = 0
	ClasseBonusMax = 10
)

// Veiculo is a single registered automobile in a company fleet, together
// with its insurance policy metadata. Removal from the user's point of view
// is a soft delete: Ativo flips to false and the row stays.
type Veiculo struct {
	ID        string `gorm:"type:uuid;primarykey" json:"id"`
	EmpresaID string `gorm:"type:uuid;not null;index" json:"empresa_id"`

	// NumeroRegistro is assigned once at creation and never changes.
	NumeroRegistro string `gorm:"type:uuid;uniqueIndex;not null" json:"numero_registro"`

	Marca         string `gorm:"not null;type:varchar(50)" json:"marca"`
	Modelo        string `gorm:"not null;type:varchar(100)" json:"modelo"`
	Placa         string `gorm:"uniqueIndex;not null;type:varchar(10)" json:"placa"`
	Chassi        string `gorm:"uniqueIndex;not null;type:varchar(17)" json:"chassi"`
	Renavam       string `gorm:"uniqueIndex;not null;type:varchar(11)" json:"renavam"`
	AnoFabricacao int    `gorm:"not null" json:"ano_fabricacao"`
	AnoModelo     int    `gorm:"not null" json:"ano_modelo"`
	ZeroKm        bool   `gorm:"not null;default:false" json:"zero_km"`
	NomeCondutor  string `gorm:"type:varchar(150)" json:"nome_condutor"`
	ClasseBonus   int    `gorm:"not null;default:0" json:"classe_bonus"`

	Seguradora           string          `gorm:"not null;type:varchar(100)" json:"seguradora"`
	Franquia             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"franquia"`
	DataVencimentoSeguro time.Time       `gorm:"type:date;not null;index" json:"data_vencimento_seguro"`

	DataCadastro time.Time `gorm:"autoCreateTime" json:"data_cadastro"`
	Ativo        bool      `gorm:"not null;default:true;index" json:"ativo"`

	// AvisoVencimentoEnviadoEm records when the expiration reminder email
	// went out, so the job sends at most one per policy cycle.
	AvisoVencimentoEnviadoEm *time.Time `json:"aviso_vencimento_enviado_em"`

	// Relationships
	Empresa   Empresa    `gorm:"foreignKey:EmpresaID" json:"-"`
	Sinistros []Sinistro `gorm:"foreignKey:VeiculoID" json:"-"`
}

// BeforeCreate hook to generate UUID and registration number
func (v *Veiculo) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.NumeroRegistro == "" {
		v.NumeroRegistro = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Veiculo model
func (Veiculo) TableName() string {
	return "veiculos"
}

// MarcaLabel returns the display label of the vehicle make.
func (v *Veiculo) MarcaLabel() string {
	return ChoiceLabel(MarcaChoices, v.Marca)
}

// SeguradoraLabel returns the display label of the insurer.
func (v *Veiculo) SeguradoraLabel() string {
	return ChoiceLabel(SeguradoraChoices, v.Seguradora)
}
