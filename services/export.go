package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const exportSheetName = "Frota"

var exportHeaders = []string{
	"Placa", "Marca", "Modelo", "Empresa", "Chassi", "Renavam",
	"Ano Fabricação", "Ano Modelo", "Classe Bônus", "Seguradora",
	"Franquia", "Vencimento do Seguro", "Condutor",
}

// ExportVeiculosXLSX builds a spreadsheet of the active fleet, one row per
// vehicle, ordered by plate. Returns the encoded file bytes ready to serve
// as a download.
func ExportVeiculosXLSX(db *gorm.DB) ([]byte, error) {
	veiculos, err := SearchVeiculosAtivos(db, "")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		f.SetCellValue(exportSheetName, cell, header)
		f.SetCellStyle(exportSheetName, cell, cell, headerStyle)
	}

	for row, v := range veiculos {
		values := []interface{}{
			v.Placa,
			v.MarcaLabel(),
			v.Modelo,
			v.Empresa.RazaoSocial,
			v.Chassi,
			v.Renavam,
			v.AnoFabricacao,
			v.AnoModelo,
			v.ClasseBonus,
			v.SeguradoraLabel(),
			v.Franquia.StringFixed(2),
			v.DataVencimentoSeguro.Format("02/01/2006"),
			v.NomeCondutor,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build data cell: %w", err)
			}
			f.SetCellValue(exportSheetName, cell, value)
		}
	}

	f.SetColWidth(exportSheetName, "A", "M", 20)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode spreadsheet: %w", err)
	}

	return buf.Bytes(), nil
}
