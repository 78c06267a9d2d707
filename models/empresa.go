package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Empresa is a brokerage client that owns a fleet of vehicles.
type Empresa struct {
	ID           string    `gorm:"type:uuid;primarykey" json:"id"`
	RazaoSocial  string    `gorm:"uniqueIndex;not null" json:"razao_social"`
	CNPJ         string    `gorm:"uniqueIndex;not null;type:varchar(18)" json:"cnpj"`
	DataCadastro time.Time `gorm:"autoCreateTime" json:"data_cadastro"`

	// Relationships
	Veiculos []Veiculo `gorm:"foreignKey:EmpresaID" json:"-"`
}

// BeforeCreate hook to generate UUID
func (e *Empresa) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Empresa model
func (Empresa) TableName() string {
	return "empresas"
}
