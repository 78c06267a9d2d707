package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"auto_frota_go/config"
	"auto_frota_go/db"
	"auto_frota_go/models"
	"auto_frota_go/services"
	"auto_frota_go/templates"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a uniquely named shared in-memory database and points the
// package-level handle at it.
func setupTestDB(t *testing.T) *gorm.DB {
	dbName := uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Empresa{},
		&models.Veiculo{},
		&models.Sinistro{},
	)
	assert.NoError(t, err)

	db.DB = testDB
	return testDB
}

// setupEcho builds an Echo instance with the HTML renderer and a request
// context carrying the test configuration.
func setupEcho(method, path string, form url.Values) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Renderer = templates.NewRenderer()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", &config.Config{Environment: "test", EmailTestMode: true})
	return e, c, rec
}

func createHandlerTestEmpresa(t *testing.T, testDB *gorm.DB) *models.Empresa {
	empresa, err := services.CreateEmpresa(testDB, "Empresa Teste "+uuid.New().String()[:8], randomCNPJDigits())
	assert.NoError(t, err)
	return empresa
}

// randomCNPJDigits builds a unique 14-digit string from a UUID so fixtures
// never collide on the CNPJ unique index.
func randomCNPJDigits() string {
	var digits strings.Builder
	for _, r := range uuid.New().String() {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
		if digits.Len() == 14 {
			break
		}
	}
	for digits.Len() < 14 {
		digits.WriteByte('7')
	}
	return digits.String()
}

func createHandlerTestVeiculo(t *testing.T, testDB *gorm.DB, empresaID, placa, chassi, renavam string) *models.Veiculo {
	veiculo, err := services.CreateVeiculo(testDB, services.VeiculoInput{
		EmpresaID:            empresaID,
		Marca:                "fiat",
		Modelo:               "Argo",
		Placa:                placa,
		Chassi:               chassi,
		Renavam:              renavam,
		AnoFabricacao:        2022,
		AnoModelo:            2023,
		ClasseBonus:          3,
		Seguradora:           "porto_seguro",
		Franquia:             decimal.NewFromInt(2500),
		DataVencimentoSeguro: time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	return veiculo
}

func createHandlerTestUser(t *testing.T, testDB *gorm.DB, email, password string) *models.User {
	hash, err := services.HashPassword(password)
	assert.NoError(t, err)

	user := &models.User{
		Name:     "Operador Teste",
		Email:    email,
		Password: hash,
		IsActive: true,
	}
	assert.NoError(t, testDB.Create(user).Error)
	return user
}
