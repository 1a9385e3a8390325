package reports

import (
	"errors"
	"time"
)

// ErrInvalidRange: token de fecha malformado. Nunca se cae en silencio a
// "hoy"; el handler lo traduce a 400.
var ErrInvalidRange = errors.New("rango de fechas inválido")

// Range es una ventana [Start, End) en UTC. End siempre es exclusivo para
// evitar errores de un día en el borde de medianoche.
type Range struct {
	Start time.Time
	End   time.Time
	Label string // valor mostrado: "2025-08-14" o "2025-08"
}

// Contains reporta si t cae dentro de la ventana (inicio inclusivo, fin
// exclusivo).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// ResolveRange convierte un token de fecha en una ventana concreta.
//
// Tokens aceptados:
//   - ""           día comercial de hoy: instante actual menos offsetHours,
//     truncado a fecha (un turno que cierra a la 1am cuenta al día anterior)
//   - "YYYY-MM-DD" ese día
//   - "YYYY-MM"    ese mes calendario completo
func ResolveRange(token string, now time.Time, offsetHours int) (Range, error) {
	if token == "" {
		shifted := now.UTC().Add(-time.Duration(offsetHours) * time.Hour)
		day := time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
		return Range{
			Start: day,
			End:   day.AddDate(0, 0, 1),
			Label: day.Format("2006-01-02"),
		}, nil
	}

	if d, err := time.ParseInLocation("2006-01-02", token, time.UTC); err == nil {
		return Range{
			Start: d,
			End:   d.AddDate(0, 0, 1),
			Label: d.Format("2006-01-02"),
		}, nil
	}

	if m, err := time.ParseInLocation("2006-01", token, time.UTC); err == nil {
		// AddDate normaliza los meses de 28/29/30/31 días
		return Range{
			Start: m,
			End:   m.AddDate(0, 1, 0),
			Label: m.Format("2006-01"),
		}, nil
	}

	return Range{}, ErrInvalidRange
}

// LastDay: último día calendario de la ventana, para el valor de display del
// selector de mes.
func (r Range) LastDay() time.Time {
	return r.End.AddDate(0, 0, -1)
}
