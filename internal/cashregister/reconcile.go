package cashregister

import "github.com/shopspring/decimal"

type Classification string

const (
	ClassExact    Classification = "exacto"
	ClassShortage Classification = "faltante"
	ClassOverage  Classification = "sobrante"
)

// Reconciliation es el registro de arqueo que se persiste en la sesión al
// cierre y se entrega al formateador de comprobantes.
type Reconciliation struct {
	InitialCash  float64        `json:"initial_cash"`
	SalesCash    float64        `json:"sales_cash"`
	SalesDigital float64        `json:"sales_digital"`
	Withdrawals  float64        `json:"withdrawals"`
	Deposits     float64        `json:"deposits"`
	ExpectedCash float64        `json:"expected_cash"`
	FinalCash    float64        `json:"final_cash"` // monto contado por el operador
	Difference   float64        `json:"difference"`
	Class        Classification `json:"classification"`
}

// Reconcile calcula el efectivo esperado al cierre de turno y la diferencia
// contra lo contado físicamente. Aritmética pura sobre valores que el caller
// ya obtuvo; esta función no hace I/O.
//
//	esperado   = inicial + ventas efectivo − retiros + depósitos
//	diferencia = contado − esperado
//
// Ambos operandos se redondean a 2 decimales (precisión de moneda) antes de
// clasificar, para que la acumulación de muchos montos pequeños no produzca
// un "sobrante de 0.0000000003" falso. Los depósitos SÍ suman al esperado
// (la versión vieja del sistema los ignoraba; era un hueco, no una función).
func Reconcile(initialCash, cashSales, salesDigital, withdrawals, deposits, countedCash float64) Reconciliation {
	expected := decimal.NewFromFloat(initialCash).
		Add(decimal.NewFromFloat(cashSales)).
		Sub(decimal.NewFromFloat(withdrawals)).
		Add(decimal.NewFromFloat(deposits)).
		Round(2)

	counted := decimal.NewFromFloat(countedCash).Round(2)
	diff := counted.Sub(expected)

	class := ClassExact
	switch {
	case diff.IsNegative():
		class = ClassShortage
	case diff.IsPositive():
		class = ClassOverage
	}

	expectedF, _ := expected.Float64()
	countedF, _ := counted.Float64()
	diffF, _ := diff.Float64()

	return Reconciliation{
		InitialCash:  initialCash,
		SalesCash:    cashSales,
		SalesDigital: salesDigital,
		Withdrawals:  withdrawals,
		Deposits:     deposits,
		ExpectedCash: expectedF,
		FinalCash:    countedF,
		Difference:   diffF,
		Class:        class,
	}
}
