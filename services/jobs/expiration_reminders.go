package jobs

import (
	"log"
	"time"

	"auto_frota_go/config"
	"auto_frota_go/models"
	"auto_frota_go/services"

	"gorm.io/gorm"
)

// SendVencimentoReminders emails the operators about every active vehicle
// whose insurance expires within the dashboard alert window and that has not
// been reminded yet. Each vehicle gets at most one reminder per policy cycle:
// the sent timestamp is recorded and cleared again when the expiration date
// is edited.
func SendVencimentoReminders(database *gorm.DB, cfg *config.Config) {
	log.Println("Starting vencimento reminder job...")

	// Same window as the dashboard: UTC truncation to match the stored dates.
	windowStart := services.StartOfDay(time.Now().UTC())
	windowEnd := windowStart.AddDate(0, 0, services.AlertWindowDays)

	var veiculos []models.Veiculo
	err := database.Preload("Empresa").
		Where("ativo = ?", true).
		Where("data_vencimento_seguro >= ? AND data_vencimento_seguro <= ?", windowStart, windowEnd).
		Where("aviso_vencimento_enviado_em IS NULL").
		Find(&veiculos).Error
	if err != nil {
		log.Printf("Error fetching veiculos for reminders: %v", err)
		return
	}

	if len(veiculos) == 0 {
		log.Println("Vencimento reminder job completed (nothing to send)")
		return
	}

	recipients, err := activeOperatorEmails(database)
	if err != nil {
		log.Printf("Error fetching reminder recipients: %v", err)
		return
	}
	if len(recipients) == 0 {
		log.Println("No active operators to remind, skipping")
		return
	}

	log.Printf("Found %d veiculos to remind", len(veiculos))

	for _, veiculo := range veiculos {
		email, err := services.BuildVencimentoSeguroEmail(recipients, &veiculo, cfg.AppURL+"/dashboard/")
		if err != nil {
			log.Printf("Failed to build reminder for veiculo %s: %v", veiculo.Placa, err)
			continue
		}

		if err := services.SendEmail(cfg, email); err != nil {
			log.Printf("Failed to send reminder for veiculo %s: %v", veiculo.Placa, err)
			continue
		}

		now := time.Now().UTC()
		database.Model(&veiculo).Update("aviso_vencimento_enviado_em", now)
		log.Printf("Sent vencimento reminder for veiculo %s", veiculo.Placa)
	}

	log.Println("Vencimento reminder job completed")
}

func activeOperatorEmails(database *gorm.DB) ([]string, error) {
	var emails []string
	err := database.Model(&models.User{}).
		Where("is_active = ?", true).
		Pluck("email", &emails).Error
	return emails, err
}
