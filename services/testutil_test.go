package services

import (
	"testing"
	"time"

	"auto_frota_go/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Empresa{},
		&models.Veiculo{},
		&models.Sinistro{},
	)
	assert.NoError(t, err)

	return db
}

func createTestEmpresa(t *testing.T, db *gorm.DB, razaoSocial, cnpj string) *models.Empresa {
	empresa, err := CreateEmpresa(db, razaoSocial, cnpj)
	assert.NoError(t, err)
	return empresa
}

// testVeiculoInput returns a valid vehicle input; the caller overrides the
// fields under test.
func testVeiculoInput(empresaID string) VeiculoInput {
	return VeiculoInput{
		EmpresaID:            empresaID,
		Marca:                "fiat",
		Modelo:               "Argo",
		Placa:                "ABC-1234",
		Chassi:               "9BWZZZ377VT004251",
		Renavam:              "12345678901",
		AnoFabricacao:        2022,
		AnoModelo:            2023,
		ZeroKm:               false,
		NomeCondutor:         "João Silva",
		ClasseBonus:          3,
		Seguradora:           "porto_seguro",
		Franquia:             decimal.NewFromFloat(2500.00),
		DataVencimentoSeguro: time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func createTestVeiculo(t *testing.T, db *gorm.DB, in VeiculoInput) *models.Veiculo {
	veiculo, err := CreateVeiculo(db, in)
	assert.NoError(t, err)
	return veiculo
}
