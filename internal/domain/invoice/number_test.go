package invoice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fournull/pcsale-api/internal/domain/invoice"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del value object Number: formato INV + 6 dígitos con ceros a la
// izquierda. La numeración de facturas depende de que Parse/Next/String sean
// exactos, incluidos los bordes del padding.
// ──────────────────────────────────────────────────────────────────────────────

func TestFirst_EsINV000001(t *testing.T) {
	assert.Equal(t, "INV000001", invoice.First().String())
	assert.Equal(t, int64(1), invoice.First().Sequence())
}

func TestParse_NumeroValido(t *testing.T) {
	n, err := invoice.Parse("INV000042")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.Sequence())
	assert.Equal(t, "INV000042", n.String())
}

func TestNext_IncrementaElConsecutivo(t *testing.T) {
	n, err := invoice.Parse("INV000042")
	require.NoError(t, err)
	assert.Equal(t, "INV000043", n.Next().String())
}

func TestNext_ConservaElPadding(t *testing.T) {
	n, err := invoice.Parse("INV000009")
	require.NoError(t, err)
	assert.Equal(t, "INV000010", n.Next().String(),
		"el consecutivo debe mantener 6 dígitos con ceros a la izquierda")
}

func TestParse_RechazaFormatosInvalidos(t *testing.T) {
	casos := []string{
		"",           // vacío
		"INV",        // sin consecutivo
		"INV42",      // sin padding
		"INV0000042", // 7 dígitos
		"FAC000042",  // prefijo distinto
		"INVabc123",  // sufijo no numérico
		"INV000000",  // consecutivo cero
		"inv000042",  // prefijo en minúsculas
	}
	for _, s := range casos {
		_, err := invoice.Parse(s)
		assert.Error(t, err, "Parse(%q) debe fallar", s)
		assert.True(t, errors.Is(err, invoice.ErrBadFormat),
			"Parse(%q) debe retornar ErrBadFormat, no un error genérico", s)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	n := invoice.First()
	for i := 0; i < 100; i++ {
		n = n.Next()
	}
	parsed, err := invoice.Parse(n.String())
	require.NoError(t, err)
	assert.Equal(t, n, parsed, "Parse(String()) debe devolver el mismo valor")
}
