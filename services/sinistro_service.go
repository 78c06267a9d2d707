package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"auto_frota_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Sinistro-related errors
var (
	ErrSinistroNotFound = errors.New("sinistro not found")
	ErrInvalidTipo      = errors.New("invalid tipo de sinistro")
	ErrInvalidStatus    = errors.New("invalid status de sinistro")
)

// descricaoPolicy strips all markup from the free-text description field;
// claim descriptions are plain text.
var descricaoPolicy = bluemonday.StrictPolicy()

// SinistroInput carries the validated form fields for registering a claim.
type SinistroInput struct {
	VeiculoID      string
	DataSinistro   time.Time
	TipoSinistro   string
	Descricao      string
	StatusSinistro string
}

// CreateSinistro registers a new claim against a vehicle. Type and status
// must come from the enumerated choice sets; the description is sanitized
// before persistence.
func CreateSinistro(db *gorm.DB, in SinistroInput) (*models.Sinistro, error) {
	if !models.IsValidChoice(models.TipoSinistroChoices, in.TipoSinistro) {
		return nil, ErrInvalidTipo
	}
	if !models.IsValidChoice(models.StatusSinistroChoices, in.StatusSinistro) {
		return nil, ErrInvalidStatus
	}

	if _, err := GetVeiculoByID(db, in.VeiculoID); err != nil {
		return nil, err
	}

	sinistro := &models.Sinistro{
		VeiculoID:      in.VeiculoID,
		DataSinistro:   in.DataSinistro,
		TipoSinistro:   in.TipoSinistro,
		Descricao:      strings.TrimSpace(descricaoPolicy.Sanitize(in.Descricao)),
		StatusSinistro: in.StatusSinistro,
	}

	if err := db.Create(sinistro).Error; err != nil {
		return nil, fmt.Errorf("failed to create sinistro: %w", err)
	}

	return sinistro, nil
}

// GetSinistroByID retrieves a claim by ID with its vehicle preloaded
func GetSinistroByID(db *gorm.DB, id string) (*models.Sinistro, error) {
	var sinistro models.Sinistro
	if err := db.Preload("Veiculo").Preload("Veiculo.Empresa").First(&sinistro, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSinistroNotFound
		}
		return nil, err
	}
	return &sinistro, nil
}

// SearchSinistros lists claims ordered by claim date, most recent first.
// A non-empty query filters by case-insensitive substring match on the claim
// type, the status, or the linked vehicle's plate or model. There is no
// active filter: claims on deactivated vehicles stay visible.
func SearchSinistros(db *gorm.DB, query string) ([]models.Sinistro, error) {
	var sinistros []models.Sinistro

	q := db.Model(&models.Sinistro{}).
		Preload("Veiculo").Preload("Veiculo.Empresa").
		Joins("JOIN veiculos ON veiculos.id = sinistros.veiculo_id")

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(sinistros.tipo_sinistro) LIKE ? OR LOWER(sinistros.status_sinistro) LIKE ? OR LOWER(veiculos.placa) LIKE ? OR LOWER(veiculos.modelo) LIKE ?",
			pattern, pattern, pattern, pattern).
			Distinct("sinistros.*")
	}

	if err := q.Order("sinistros.data_sinistro DESC").Find(&sinistros).Error; err != nil {
		return nil, fmt.Errorf("failed to search sinistros: %w", err)
	}

	return sinistros, nil
}

// DeleteSinistro permanently removes a claim. There is no soft delete for
// claims.
func DeleteSinistro(db *gorm.DB, id string) error {
	result := db.Delete(&models.Sinistro{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sinistro: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSinistroNotFound
	}
	return nil
}
