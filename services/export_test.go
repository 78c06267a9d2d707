package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestExportVeiculosXLSX(t *testing.T) {
	db := setupServiceTestDB(t)
	empresa := createTestEmpresa(t, db, "Frota Teste", "12345678000199")

	createTestVeiculo(t, db, testVeiculoInput(empresa.ID))

	in := testVeiculoInput(empresa.ID)
	in.Placa = "XYZ-9876"
	in.Chassi = "9BWZZZ377VT004299"
	in.Renavam = "98765432109"
	desativado := createTestVeiculo(t, db, in)
	_, err := DeactivateVeiculo(db, desativado.ID)
	assert.NoError(t, err)

	data, err := ExportVeiculosXLSX(db)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	assert.NoError(t, err)

	t.Run("Header row plus one row per active vehicle", func(t *testing.T) {
		assert.Len(t, rows, 2)
		assert.Equal(t, exportHeaders, rows[0])
	})

	t.Run("Row carries display labels and formatted values", func(t *testing.T) {
		row := rows[1]
		assert.Equal(t, "ABC-1234", row[0])
		assert.Equal(t, "Fiat", row[1])
		assert.Equal(t, "Frota Teste", row[3])
		assert.Equal(t, "Porto Seguro", row[9])
		assert.Equal(t, "2500.00", row[10])
		assert.Equal(t, "15/03/2027", row[11])
	})
}
