package cashregister_test

import (
	"testing"

	"github.com/helenHardy/HEHA/internal/cashregister"

	"github.com/stretchr/testify/assert"
)

// TestReconcile_CierreExacto: 100 de fondo inicial + 250.50 en efectivo
// − 50 de retiro = 300.50 esperado; si se cuenta eso, el arqueo es exacto.
func TestReconcile_CierreExacto(t *testing.T) {
	r := cashregister.Reconcile(100, 250.50, 80, 50, 0, 300.50)

	assert.Equal(t, 300.50, r.ExpectedCash)
	assert.Equal(t, 0.0, r.Difference)
	assert.Equal(t, cashregister.ClassExact, r.Class)
}

// TestReconcile_Faltante: contar menos de lo esperado produce diferencia
// negativa y clasificación "faltante".
func TestReconcile_Faltante(t *testing.T) {
	r := cashregister.Reconcile(100, 200, 0, 0, 0, 280)

	assert.Equal(t, 300.0, r.ExpectedCash)
	assert.Equal(t, -20.0, r.Difference, "La diferencia conserva el signo: contado − esperado")
	assert.Equal(t, cashregister.ClassShortage, r.Class)
}

// TestReconcile_Sobrante: contar de más produce diferencia positiva.
func TestReconcile_Sobrante(t *testing.T) {
	r := cashregister.Reconcile(100, 200, 0, 0, 0, 310.25)

	assert.Equal(t, 10.25, r.Difference)
	assert.Equal(t, cashregister.ClassOverage, r.Class)
}

// TestReconcile_DepositosSumanAlEsperado: un depósito mete efectivo físico a
// la caja, así que SUMA al esperado igual que un retiro resta.
func TestReconcile_DepositosSumanAlEsperado(t *testing.T) {
	r := cashregister.Reconcile(100, 200, 0, 50, 30, 280)

	// 100 + 200 − 50 + 30 = 280
	assert.Equal(t, 280.0, r.ExpectedCash)
	assert.Equal(t, cashregister.ClassExact, r.Class)
}

// TestReconcile_VentasDigitalesNoTocanCaja: el QR no es efectivo físico; no
// participa del esperado, solo se registra para el comprobante.
func TestReconcile_VentasDigitalesNoTocanCaja(t *testing.T) {
	conDigital := cashregister.Reconcile(100, 200, 500, 0, 0, 300)
	sinDigital := cashregister.Reconcile(100, 200, 0, 0, 0, 300)

	assert.Equal(t, sinDigital.ExpectedCash, conDigital.ExpectedCash)
	assert.Equal(t, 500.0, conDigital.SalesDigital, "Pero sí queda registrado en el arqueo")
}

// TestReconcile_RedondeoAntesDeClasificar: residuos de punto flotante por
// debajo del centavo no producen un falso sobrante ni faltante.
func TestReconcile_RedondeoAntesDeClasificar(t *testing.T) {
	// 0.1+0.2 en float64 es 0.30000000000000004
	r := cashregister.Reconcile(0.1, 0.2, 0, 0, 0, 0.30)

	assert.Equal(t, 0.30, r.ExpectedCash)
	assert.Equal(t, 0.0, r.Difference)
	assert.Equal(t, cashregister.ClassExact, r.Class)
}

// TestReconcile_CentavoDeDiferencia: un centavo real sí clasifica; el
// redondeo no se traga diferencias legítimas.
func TestReconcile_CentavoDeDiferencia(t *testing.T) {
	r := cashregister.Reconcile(100, 0, 0, 0, 0, 99.99)

	assert.Equal(t, -0.01, r.Difference)
	assert.Equal(t, cashregister.ClassShortage, r.Class)
}

// TestReconcile_CajaVacia: abrir y cerrar sin movimiento alguno es un cierre
// exacto con todo en cero.
func TestReconcile_CajaVacia(t *testing.T) {
	r := cashregister.Reconcile(0, 0, 0, 0, 0, 0)

	assert.Equal(t, 0.0, r.ExpectedCash)
	assert.Equal(t, cashregister.ClassExact, r.Class)
}
