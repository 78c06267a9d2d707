package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"auto_frota_go/config"
	"auto_frota_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// VencimentoEmailData carries the fields for the expiration reminder email.
type VencimentoEmailData struct {
	Placa        string
	Modelo       string
	Empresa      string
	Seguradora   string
	Vencimento   string
	DashboardURL string
}

var vencimentoEmailTemplate = template.Must(template.New("vencimento").Parse(`
<p>O seguro do veículo <strong>{{.Placa}}</strong> ({{.Modelo}} — {{.Empresa}}) vence em <strong>{{.Vencimento}}</strong>.</p>
<p>Seguradora: {{.Seguradora}}</p>
<p><a href="{{.DashboardURL}}">Abrir o painel</a> para renovar a apólice.</p>
`))

// BuildVencimentoSeguroEmail builds the insurance-expiration reminder for a
// single vehicle.
func BuildVencimentoSeguroEmail(to []string, veiculo *models.Veiculo, dashboardURL string) (*Email, error) {
	data := VencimentoEmailData{
		Placa:        veiculo.Placa,
		Modelo:       veiculo.Modelo,
		Empresa:      veiculo.Empresa.RazaoSocial,
		Seguradora:   veiculo.SeguradoraLabel(),
		Vencimento:   veiculo.DataVencimentoSeguro.Format("02/01/2006"),
		DashboardURL: dashboardURL,
	}

	var buf bytes.Buffer
	if err := vencimentoEmailTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render vencimento email: %w", err)
	}

	return &Email{
		To:       to,
		Subject:  fmt.Sprintf("Seguro do veículo %s vence em %s", data.Placa, data.Vencimento),
		HTMLBody: buf.String(),
		TextBody: fmt.Sprintf("O seguro do veículo %s (%s - %s) vence em %s. Seguradora: %s.",
			data.Placa, data.Modelo, data.Empresa, data.Vencimento, data.Seguradora),
	}, nil
}

// SendEmail sends an email via Resend. In test mode the message is logged to
// the console instead.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		log.Printf("[EMAIL TEST MODE] To: %v | Subject: %s", email.To, email.Subject)
		log.Printf("[EMAIL TEST MODE] Body: %s", email.TextBody)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
