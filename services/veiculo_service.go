package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"auto_frota_go/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Veiculo-related errors
var (
	ErrVeiculoNotFound    = errors.New("veiculo not found")
	ErrPlacaTaken         = errors.New("placa already registered")
	ErrChassiTaken        = errors.New("chassi already registered")
	ErrRenavamTaken       = errors.New("renavam already registered")
	ErrInvalidMarca       = errors.New("invalid marca")
	ErrInvalidSeguradora  = errors.New("invalid seguradora")
	ErrInvalidClasseBonus = errors.New("classe de bônus must be between 0 and 10")
)

var renavamRegex = regexp.MustCompile(`^\d{11}$`)

// VeiculoInput carries the validated form fields for creating or editing a
// vehicle. Placa, chassi and CNPJ-style normalization happens here, not in
// the handler.
type VeiculoInput struct {
	EmpresaID            string
	Marca                string
	Modelo               string
	Placa                string
	Chassi               string
	Renavam              string
	AnoFabricacao        int
	AnoModelo            int
	ZeroKm               bool
	NomeCondutor         string
	ClasseBonus          int
	Seguradora           string
	Franquia             decimal.Decimal
	DataVencimentoSeguro time.Time
}

// normalizeVeiculoInput validates the input fields and returns the canonical
// plate and chassi forms. Uniqueness is checked separately.
func normalizeVeiculoInput(in *VeiculoInput) error {
	if !models.IsValidChoice(models.MarcaChoices, in.Marca) {
		return ErrInvalidMarca
	}
	if !models.IsValidChoice(models.SeguradoraChoices, in.Seguradora) {
		return ErrInvalidSeguradora
	}
	if in.ClasseBonus < models.ClasseBonusMin || in.ClasseBonus > models.ClasseBonusMax {
		return ErrInvalidClasseBonus
	}

	placa, err := NormalizePlaca(strings.TrimSpace(in.Placa))
	if err != nil {
		return err
	}
	in.Placa = placa

	in.Chassi = strings.ToUpper(strings.TrimSpace(in.Chassi))
	if len(in.Chassi) != 17 {
		return fmt.Errorf("%w: chassi must be exactly 17 characters", ErrInvalidFormat)
	}

	in.Renavam = strings.TrimSpace(in.Renavam)
	if !renavamRegex.MatchString(in.Renavam) {
		return fmt.Errorf("%w: renavam must be exactly 11 digits", ErrInvalidFormat)
	}

	in.Modelo = strings.TrimSpace(in.Modelo)
	in.NomeCondutor = strings.TrimSpace(in.NomeCondutor)

	return nil
}

// checkVeiculoUniqueness verifies that placa, chassi and renavam are not in
// use by any other vehicle, active or not. excludeID skips the vehicle being
// edited; pass "" on create.
func checkVeiculoUniqueness(db *gorm.DB, in *VeiculoInput, excludeID string) error {
	type check struct {
		column string
		value  string
		err    error
	}
	checks := []check{
		{"placa", in.Placa, ErrPlacaTaken},
		{"chassi", in.Chassi, ErrChassiTaken},
		{"renavam", in.Renavam, ErrRenavamTaken},
	}

	for _, c := range checks {
		q := db.Model(&models.Veiculo{}).Where(c.column+" = ?", c.value)
		if excludeID != "" {
			q = q.Where("id <> ?", excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check %s uniqueness: %w", c.column, err)
		}
		if count > 0 {
			return c.err
		}
	}

	return nil
}

// CreateVeiculo registers a new vehicle for a company. A registration UUID is
// assigned on insert and never changes afterwards.
func CreateVeiculo(db *gorm.DB, in VeiculoInput) (*models.Veiculo, error) {
	if err := normalizeVeiculoInput(&in); err != nil {
		return nil, err
	}

	if _, err := GetEmpresaByID(db, in.EmpresaID); err != nil {
		return nil, err
	}

	if err := checkVeiculoUniqueness(db, &in, ""); err != nil {
		return nil, err
	}

	veiculo := &models.Veiculo{
		EmpresaID:            in.EmpresaID,
		Marca:                in.Marca,
		Modelo:               in.Modelo,
		Placa:                in.Placa,
		Chassi:               in.Chassi,
		Renavam:              in.Renavam,
		AnoFabricacao:        in.AnoFabricacao,
		AnoModelo:            in.AnoModelo,
		ZeroKm:               in.ZeroKm,
		NomeCondutor:         in.NomeCondutor,
		ClasseBonus:          in.ClasseBonus,
		Seguradora:           in.Seguradora,
		Franquia:             in.Franquia,
		DataVencimentoSeguro: in.DataVencimentoSeguro,
		Ativo:                true,
	}

	if err := db.Create(veiculo).Error; err != nil {
		return nil, fmt.Errorf("failed to create veiculo: %w", err)
	}

	return veiculo, nil
}

// UpdateVeiculo edits an existing vehicle. The registration UUID, creation
// timestamp and active flag are not touched; uniqueness checks exclude the
// vehicle itself.
func UpdateVeiculo(db *gorm.DB, id string, in VeiculoInput) (*models.Veiculo, error) {
	veiculo, err := GetVeiculoByID(db, id)
	if err != nil {
		return nil, err
	}

	if err := normalizeVeiculoInput(&in); err != nil {
		return nil, err
	}

	if _, err := GetEmpresaByID(db, in.EmpresaID); err != nil {
		return nil, err
	}

	if err := checkVeiculoUniqueness(db, &in, veiculo.ID); err != nil {
		return nil, err
	}

	// Reset the reminder marker when the expiration date moves, so the next
	// policy cycle gets its own alert email.
	if !veiculo.DataVencimentoSeguro.Equal(in.DataVencimentoSeguro) {
		veiculo.AvisoVencimentoEnviadoEm = nil
	}

	veiculo.EmpresaID = in.EmpresaID
	veiculo.Marca = in.Marca
	veiculo.Modelo = in.Modelo
	veiculo.Placa = in.Placa
	veiculo.Chassi = in.Chassi
	veiculo.Renavam = in.Renavam
	veiculo.AnoFabricacao = in.AnoFabricacao
	veiculo.AnoModelo = in.AnoModelo
	veiculo.ZeroKm = in.ZeroKm
	veiculo.NomeCondutor = in.NomeCondutor
	veiculo.ClasseBonus = in.ClasseBonus
	veiculo.Seguradora = in.Seguradora
	veiculo.Franquia = in.Franquia
	veiculo.DataVencimentoSeguro = in.DataVencimentoSeguro

	if err := db.Save(veiculo).Error; err != nil {
		return nil, fmt.Errorf("failed to update veiculo: %w", err)
	}

	return veiculo, nil
}

// GetVeiculoByID retrieves a vehicle by ID with its company preloaded
func GetVeiculoByID(db *gorm.DB, id string) (*models.Veiculo, error) {
	var veiculo models.Veiculo
	if err := db.Preload("Empresa").First(&veiculo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVeiculoNotFound
		}
		return nil, err
	}
	return &veiculo, nil
}

// SearchVeiculosAtivos lists active vehicles ordered by plate. A non-empty
// query filters by case-insensitive substring match on placa, modelo or
// chassi.
func SearchVeiculosAtivos(db *gorm.DB, query string) ([]models.Veiculo, error) {
	var veiculos []models.Veiculo

	q := db.Preload("Empresa").Where("ativo = ?", true)
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(placa) LIKE ? OR LOWER(modelo) LIKE ? OR LOWER(chassi) LIKE ?",
			pattern, pattern, pattern)
	}

	if err := q.Order("placa ASC").Find(&veiculos).Error; err != nil {
		return nil, fmt.Errorf("failed to search veiculos: %w", err)
	}

	return veiculos, nil
}

// DeactivateVeiculo performs the user-facing soft delete: the active flag
// flips to false, the row and its claims stay.
func DeactivateVeiculo(db *gorm.DB, id string) (*models.Veiculo, error) {
	veiculo, err := GetVeiculoByID(db, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(veiculo).Update("ativo", false).Error; err != nil {
		return nil, fmt.Errorf("failed to deactivate veiculo: %w", err)
	}
	veiculo.Ativo = false

	return veiculo, nil
}
