package services

import (
	"errors"
	"fmt"
	"strings"

	"auto_frota_go/models"

	"gorm.io/gorm"
)

// Empresa-related errors
var (
	ErrEmpresaNotFound  = errors.New("empresa not found")
	ErrRazaoSocialTaken = errors.New("razão social already registered")
	ErrCNPJTaken        = errors.New("CNPJ already registered")
)

// CreateEmpresa registers a new company. The CNPJ is normalized to its
// canonical punctuated form before persistence; razão social and CNPJ must
// both be unique.
func CreateEmpresa(db *gorm.DB, razaoSocial, cnpj string) (*models.Empresa, error) {
	razaoSocial = strings.TrimSpace(razaoSocial)

	normalizedCNPJ, err := NormalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.Empresa{}).Where("razao_social = ?", razaoSocial).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check razão social uniqueness: %w", err)
	}
	if count > 0 {
		return nil, ErrRazaoSocialTaken
	}

	if err := db.Model(&models.Empresa{}).Where("cnpj = ?", normalizedCNPJ).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check CNPJ uniqueness: %w", err)
	}
	if count > 0 {
		return nil, ErrCNPJTaken
	}

	empresa := &models.Empresa{
		RazaoSocial: razaoSocial,
		CNPJ:        normalizedCNPJ,
	}

	if err := db.Create(empresa).Error; err != nil {
		return nil, fmt.Errorf("failed to create empresa: %w", err)
	}

	return empresa, nil
}

// GetEmpresaByID retrieves a company by ID
func GetEmpresaByID(db *gorm.DB, id string) (*models.Empresa, error) {
	var empresa models.Empresa
	if err := db.First(&empresa, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmpresaNotFound
		}
		return nil, err
	}
	return &empresa, nil
}

// SearchEmpresas lists companies ordered by razão social. A non-empty query
// filters by case-insensitive substring match on razão social or CNPJ.
func SearchEmpresas(db *gorm.DB, query string) ([]models.Empresa, error) {
	var empresas []models.Empresa

	q := db.Model(&models.Empresa{})
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(razao_social) LIKE ? OR LOWER(cnpj) LIKE ?", pattern, pattern).Distinct()
	}

	if err := q.Order("razao_social ASC").Find(&empresas).Error; err != nil {
		return nil, fmt.Errorf("failed to search empresas: %w", err)
	}

	return empresas, nil
}

// ListEmpresas returns all companies ordered by razão social, for dropdowns.
func ListEmpresas(db *gorm.DB) ([]models.Empresa, error) {
	return SearchEmpresas(db, "")
}

// DeleteEmpresa permanently removes a company together with its vehicles and
// all claims on those vehicles. The cascade is an explicit application-level
// rule executed inside one transaction: claims first, then vehicles, then the
// company row.
func DeleteEmpresa(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var empresa models.Empresa
		if err := tx.First(&empresa, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmpresaNotFound
			}
			return err
		}

		veiculoIDs := tx.Model(&models.Veiculo{}).Select("id").Where("empresa_id = ?", empresa.ID)

		if err := tx.Where("veiculo_id IN (?)", veiculoIDs).Delete(&models.Sinistro{}).Error; err != nil {
			return fmt.Errorf("failed to delete sinistros for empresa %s: %w", empresa.ID, err)
		}

		if err := tx.Where("empresa_id = ?", empresa.ID).Delete(&models.Veiculo{}).Error; err != nil {
			return fmt.Errorf("failed to delete veiculos for empresa %s: %w", empresa.ID, err)
		}

		if err := tx.Delete(&empresa).Error; err != nil {
			return fmt.Errorf("failed to delete empresa %s: %w", empresa.ID, err)
		}

		return nil
	})
}
