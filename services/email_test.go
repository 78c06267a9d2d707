package services

import (
	"testing"
	"time"

	"auto_frota_go/config"
	"auto_frota_go/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildVencimentoSeguroEmail(t *testing.T) {
	veiculo := &models.Veiculo{
		Placa:                "ABC-1234",
		Modelo:               "Argo",
		Seguradora:           "porto_seguro",
		DataVencimentoSeguro: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Empresa:              models.Empresa{RazaoSocial: "Frota Teste"},
	}

	email, err := BuildVencimentoSeguroEmail([]string{"operador@example.com"}, veiculo, "http://localhost:8080/dashboard/")
	assert.NoError(t, err)

	assert.Equal(t, []string{"operador@example.com"}, email.To)
	assert.Equal(t, "Seguro do veículo ABC-1234 vence em 15/10/2026", email.Subject)
	assert.Contains(t, email.HTMLBody, "ABC-1234")
	assert.Contains(t, email.HTMLBody, "Porto Seguro")
	assert.Contains(t, email.HTMLBody, "http://localhost:8080/dashboard/")
	assert.Contains(t, email.TextBody, "15/10/2026")
}

func TestSendEmailTestMode(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}
	err := SendEmail(cfg, &Email{
		To:       []string{"operador@example.com"},
		Subject:  "Teste",
		TextBody: "corpo",
	})
	assert.NoError(t, err)
}

func TestSendEmailRequiresAPIKey(t *testing.T) {
	cfg := &config.Config{EmailTestMode: false}
	err := SendEmail(cfg, &Email{To: []string{"operador@example.com"}, Subject: "Teste"})
	assert.Error(t, err)
}
