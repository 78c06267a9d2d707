package services

import (
	"fmt"
	"time"

	"auto_frota_go/models"

	"gorm.io/gorm"
)

// AlertWindowDays is the lookahead used to surface upcoming insurance
// expirations on the dashboard. Policies expiring before the reference date
// are deliberately outside the window.
const AlertWindowDays = 60

// CountVeiculosAtivos returns the number of vehicles with the active flag set.
func CountVeiculosAtivos(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.Veiculo{}).Where("ativo = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active veiculos: %w", err)
	}
	return count, nil
}

// VeiculosComSeguroAVencer returns the active vehicles whose insurance
// expires within the inclusive window [ref, ref+60 days], soonest first,
// together with the count. Expiration dates are stored as UTC midnights, so
// ref is converted to UTC before truncation; truncating in the server's own
// zone would shift the day boundaries off the stored values.
func VeiculosComSeguroAVencer(db *gorm.DB, ref time.Time) ([]models.Veiculo, int64, error) {
	windowStart := StartOfDay(ref.UTC())
	windowEnd := windowStart.AddDate(0, 0, AlertWindowDays)

	var veiculos []models.Veiculo
	err := db.Preload("Empresa").
		Where("ativo = ?", true).
		Where("data_vencimento_seguro >= ? AND data_vencimento_seguro <= ?", windowStart, windowEnd).
		Order("data_vencimento_seguro ASC").
		Find(&veiculos).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query expiring veiculos: %w", err)
	}

	return veiculos, int64(len(veiculos)), nil
}
