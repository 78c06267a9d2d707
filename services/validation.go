package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidFormat is returned when a document or plate fails format validation.
// Handlers surface it as a field-level message on the originating form.
var ErrInvalidFormat = errors.New("invalid format")

var (
	nonDigitsRegex     = regexp.MustCompile(`\D`)
	cnpjCanonicalRegex = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	placaLegacyRegex   = regexp.MustCompile(`(?i)^[A-Z]{3}-\d{4}$`)
	placaMercosulRegex = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
)

// NormalizeCNPJ validates a CNPJ and returns it in the canonical punctuated
// form (DD.DDD.DDD/DDDD-DD). Punctuation in the input is ignored; exactly 14
// digits must remain after stripping. An input already in canonical form is
// returned unchanged.
func NormalizeCNPJ(cnpj string) (string, error) {
	digits := nonDigitsRegex.ReplaceAllString(cnpj, "")
	if len(digits) != 14 {
		return "", fmt.Errorf("%w: CNPJ must contain exactly 14 digits", ErrInvalidFormat)
	}

	if cnpjCanonicalRegex.MatchString(cnpj) {
		return cnpj, nil
	}

	return fmt.Sprintf("%s.%s.%s/%s-%s",
		digits[0:2], digits[2:5], digits[5:8], digits[8:12], digits[12:14]), nil
}

// NormalizePlaca validates a license plate. Two shapes are accepted:
//   - legacy LLL-DDDD, matched case-insensitively and returned verbatim
//   - Mercosul LLLDLDD, matched after stripping hyphens and upper-casing,
//     returned in the stripped upper-case form
func NormalizePlaca(placa string) (string, error) {
	if placaLegacyRegex.MatchString(placa) {
		return placa, nil
	}

	stripped := strings.ToUpper(strings.ReplaceAll(placa, "-", ""))
	if placaMercosulRegex.MatchString(stripped) {
		return stripped, nil
	}

	return "", fmt.Errorf("%w: placa must match AAA-9999 or AAA9A99", ErrInvalidFormat)
}
