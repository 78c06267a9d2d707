package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Claim type values
const (
	TipoSinistroColisao          = "colisao"
	TipoSinistroRoubo            = "roubo"
	TipoSinistroFurto            = "furto"
	TipoSinistroIncendio         = "incendio"
	TipoSinistroDanosTerceiros   = "danos_terceiros"
	TipoSinistroFenomenoNatureza = "fenomeno_natureza"
	TipoSinistroOutros           = "outros"
)

// Claim status values
const (
	StatusSinistroEmAnalise       = "em_analise"
	StatusSinistroAberto          = "aberto"
	StatusSinistroConcluidoComInd = "concluido_com_indenizacao"
	StatusSinistroConcluidoSemInd = "concluido_sem_indenizacao"
	StatusSinistroNegado          = "negado"
	StatusSinistroCancelado       = "cancelado"
)

// TipoSinistroChoices are the claim types offered on the form.
var TipoSinistroChoices = []Choice{
	{TipoSinistroColisao, "Colisão"},
	{TipoSinistroRoubo, "Roubo"},
	{TipoSinistroFurto, "Furto"},
	{TipoSinistroIncendio, "Incêndio"},
	{TipoSinistroDanosTerceiros, "Danos a Terceiros"},
	{TipoSinistroFenomenoNatureza, "Fenômeno da Natureza"},
	{TipoSinistroOutros, "Outros"},
}

// StatusSinistroChoices are the claim statuses offered on the form.
var StatusSinistroChoices = []Choice{
	{StatusSinistroEmAnalise, "Em Análise"},
	{StatusSinistroAberto, "Aberto"},
	{StatusSinistroConcluidoComInd, "Concluído com Indenização"},
	{StatusSinistroConcluidoSemInd, "Concluído sem Indenização"},
	{StatusSinistroNegado, "Negado"},
	{StatusSinistroCancelado, "Cancelado"},
}

// Sinistro is a recorded insurance incident against one vehicle. Unlike
// vehicles, claims are deleted permanently on explicit confirmed request.
type Sinistro struct {
	ID        string `gorm:"type:uuid;primarykey" json:"id"`
	VeiculoID string `gorm:"type:uuid;not null;index" json:"veiculo_id"`

	DataSinistro   time.Time `gorm:"type:date;not null;index" json:"data_sinistro"`
	TipoSinistro   string    `gorm:"not null;type:varchar(50);default:colisao" json:"tipo_sinistro"`
	Descricao      string    `gorm:"type:text" json:"descricao"`
	StatusSinistro string    `gorm:"not null;type:varchar(50);default:em_analise" json:"status_sinistro"`

	DataRegistroSistema time.Time `gorm:"autoCreateTime" json:"data_registro_sistema"`

	// Relationships
	Veiculo Veiculo `gorm:"foreignKey:VeiculoID" json:"-"`
}

// BeforeCreate hook to generate UUID
func (s *Sinistro) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Sinistro model
func (Sinistro) TableName() string {
	return "sinistros"
}

// TipoLabel returns the display label of the claim type.
func (s *Sinistro) TipoLabel() string {
	return ChoiceLabel(TipoSinistroChoices, s.TipoSinistro)
}

// StatusLabel returns the display label of the claim status.
func (s *Sinistro) StatusLabel() string {
	return ChoiceLabel(StatusSinistroChoices, s.StatusSinistro)
}
