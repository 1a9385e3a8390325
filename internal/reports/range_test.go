package reports_test

import (
	"testing"
	"time"

	"github.com/helenHardy/HEHA/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUTC(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return parsed.UTC()
}

// TestResolveRange_HoyConOffset verifica el corte del día comercial: a las
// 02:30 de la madrugada con offset 4, el turno todavía pertenece al día
// anterior.
func TestResolveRange_HoyConOffset(t *testing.T) {
	now := mustUTC(t, "2025-08-15 02:30:00")

	rng, err := reports.ResolveRange("", now, 4)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-14", rng.Label, "A las 02:30 con offset 4 el día comercial sigue siendo el 14")
	assert.Equal(t, mustUTC(t, "2025-08-14 00:00:00"), rng.Start)
	assert.Equal(t, mustUTC(t, "2025-08-15 00:00:00"), rng.End)
}

// TestResolveRange_HoySinOffset: con offset 0 el día comercial coincide con
// el día calendario UTC.
func TestResolveRange_HoySinOffset(t *testing.T) {
	now := mustUTC(t, "2025-08-15 02:30:00")

	rng, err := reports.ResolveRange("", now, 0)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-15", rng.Label)
}

// TestResolveRange_PasadoElCorte: a las 05:00 (ya pasado el corte de las 04)
// el día comercial es el día calendario actual.
func TestResolveRange_PasadoElCorte(t *testing.T) {
	now := mustUTC(t, "2025-08-15 05:00:00")

	rng, err := reports.ResolveRange("", now, 4)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-15", rng.Label)
}

// TestResolveRange_DiaExplicito: un token YYYY-MM-DD ignora el offset y el
// instante actual por completo.
func TestResolveRange_DiaExplicito(t *testing.T) {
	now := mustUTC(t, "2025-12-31 23:59:59")

	rng, err := reports.ResolveRange("2025-08-14", now, 4)
	require.NoError(t, err)

	assert.Equal(t, "2025-08-14", rng.Label)
	assert.Equal(t, mustUTC(t, "2025-08-14 00:00:00"), rng.Start)
	assert.Equal(t, mustUTC(t, "2025-08-15 00:00:00"), rng.End)
}

// TestResolveRange_MesesDeDistintaLongitud cubre 28, 29, 30 y 31 días; el fin
// exclusivo siempre es el día 1 del mes siguiente.
func TestResolveRange_MesesDeDistintaLongitud(t *testing.T) {
	now := mustUTC(t, "2025-08-15 12:00:00")

	cases := []struct {
		token   string
		end     string
		lastDay string
	}{
		{"2025-02", "2025-03-01 00:00:00", "2025-02-28"}, // febrero normal
		{"2024-02", "2024-03-01 00:00:00", "2024-02-29"}, // febrero bisiesto
		{"2025-04", "2025-05-01 00:00:00", "2025-04-30"}, // mes de 30
		{"2025-08", "2025-09-01 00:00:00", "2025-08-31"}, // mes de 31
		{"2025-12", "2026-01-01 00:00:00", "2025-12-31"}, // cruce de año
	}

	for _, tc := range cases {
		rng, err := reports.ResolveRange(tc.token, now, 4)
		require.NoError(t, err, "El token %q debe ser válido", tc.token)
		assert.Equal(t, mustUTC(t, tc.end), rng.End, "Fin exclusivo incorrecto para %q", tc.token)
		assert.Equal(t, tc.lastDay, rng.LastDay().Format("2006-01-02"), "Último día incorrecto para %q", tc.token)
		assert.Equal(t, tc.token, rng.Label)
	}
}

// TestResolveRange_TokensInvalidos: un token malformado es un error duro,
// nunca cae en silencio al día de hoy.
func TestResolveRange_TokensInvalidos(t *testing.T) {
	now := mustUTC(t, "2025-08-15 12:00:00")

	for _, token := range []string{
		"14-08-2025",
		"2025/08/14",
		"2025-13",
		"2025-00-10",
		"2025-08-32",
		"ayer",
		"2025-8-1",
	} {
		_, err := reports.ResolveRange(token, now, 4)
		assert.ErrorIs(t, err, reports.ErrInvalidRange, "El token %q debe rechazarse", token)
	}
}

// TestRange_Contains: inicio inclusivo, fin exclusivo. Un pedido creado
// exactamente a medianoche del día siguiente NO pertenece al rango.
func TestRange_Contains(t *testing.T) {
	rng, err := reports.ResolveRange("2025-08-14", time.Now(), 4)
	require.NoError(t, err)

	assert.True(t, rng.Contains(rng.Start), "El instante de inicio pertenece al rango")
	assert.True(t, rng.Contains(mustUTC(t, "2025-08-14 23:59:59")))
	assert.False(t, rng.Contains(rng.End), "El fin exclusivo no pertenece al rango")
	assert.False(t, rng.Contains(mustUTC(t, "2025-08-13 23:59:59")))
}

// TestResolveRange_DiaYMesNoSeSolapan: cada instante cae en exactamente un
// rango diario; el borde de medianoche nunca se cuenta dos veces.
func TestResolveRange_DiaYMesNoSeSolapan(t *testing.T) {
	dia14, err := reports.ResolveRange("2025-08-14", time.Now(), 4)
	require.NoError(t, err)
	dia15, err := reports.ResolveRange("2025-08-15", time.Now(), 4)
	require.NoError(t, err)

	medianoche := mustUTC(t, "2025-08-15 00:00:00")
	assert.False(t, dia14.Contains(medianoche))
	assert.True(t, dia15.Contains(medianoche), "La medianoche pertenece solo al día que empieza")
}
