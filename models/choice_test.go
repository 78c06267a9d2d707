package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidChoice(t *testing.T) {
	assert.True(t, IsValidChoice(MarcaChoices, "fiat"))
	assert.False(t, IsValidChoice(MarcaChoices, "Fiat"))
	assert.False(t, IsValidChoice(MarcaChoices, "lada"))
	assert.True(t, IsValidChoice(TipoSinistroChoices, TipoSinistroFenomenoNatureza))
	assert.True(t, IsValidChoice(StatusSinistroChoices, StatusSinistroConcluidoComInd))
}

func TestChoiceLabel(t *testing.T) {
	assert.Equal(t, "Porto Seguro", ChoiceLabel(SeguradoraChoices, "porto_seguro"))
	assert.Equal(t, "Fenômeno da Natureza", ChoiceLabel(TipoSinistroChoices, TipoSinistroFenomenoNatureza))

	// Unknown values fall back to the raw value
	assert.Equal(t, "desconhecido", ChoiceLabel(MarcaChoices, "desconhecido"))
}
