package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCNPJ(t *testing.T) {
	t.Run("Bare digits are reformatted", func(t *testing.T) {
		got, err := NormalizeCNPJ("12345678000199")
		assert.NoError(t, err)
		assert.Equal(t, "12.345.678/0001-99", got)
	})

	t.Run("Canonical input is returned unchanged", func(t *testing.T) {
		got, err := NormalizeCNPJ("12.345.678/0001-99")
		assert.NoError(t, err)
		assert.Equal(t, "12.345.678/0001-99", got)
	})

	t.Run("Partial punctuation is normalized", func(t *testing.T) {
		got, err := NormalizeCNPJ("12.345.678000199")
		assert.NoError(t, err)
		assert.Equal(t, "12.345.678/0001-99", got)
	})

	t.Run("Too few digits fail", func(t *testing.T) {
		_, err := NormalizeCNPJ("1234567800019")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("Too many digits fail", func(t *testing.T) {
		_, err := NormalizeCNPJ("123456780001990")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("Letters do not count as digits", func(t *testing.T) {
		_, err := NormalizeCNPJ("12.345.678/0001-9A")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestNormalizePlaca(t *testing.T) {
	t.Run("Legacy plate is returned verbatim", func(t *testing.T) {
		got, err := NormalizePlaca("ABC-1234")
		assert.NoError(t, err)
		assert.Equal(t, "ABC-1234", got)
	})

	t.Run("Lower-case legacy plate is returned verbatim", func(t *testing.T) {
		got, err := NormalizePlaca("abc-1234")
		assert.NoError(t, err)
		assert.Equal(t, "abc-1234", got)
	})

	t.Run("Mercosul plate is canonicalized", func(t *testing.T) {
		got, err := NormalizePlaca("abc1d23")
		assert.NoError(t, err)
		assert.Equal(t, "ABC1D23", got)
	})

	t.Run("Mercosul plate with hyphen is stripped", func(t *testing.T) {
		got, err := NormalizePlaca("ABC-1D23")
		assert.NoError(t, err)
		assert.Equal(t, "ABC1D23", got)
	})

	t.Run("Legacy shape without hyphen is rejected", func(t *testing.T) {
		// ABC1234 has a digit where Mercosul requires a letter
		_, err := NormalizePlaca("ABC1234")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		for _, placa := range []string{"", "AB-1234", "ABCD-123", "1234-ABC", "ABC1DE3"} {
			_, err := NormalizePlaca(placa)
			assert.ErrorIs(t, err, ErrInvalidFormat, "placa %q", placa)
		}
	})
}
