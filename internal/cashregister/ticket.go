package cashregister

import (
	"fmt"
	"strings"
	"time"

	"github.com/helenHardy/HEHA/internal/reports"
)

// CloseReportText arma el comprobante de cierre de turno en texto plano para
// impresora térmica de 32 columnas. El hardware de impresión queda del lado
// del cliente; aquí solo se genera el contenido.
func CloseReportText(rec Reconciliation, report *reports.ReportResult, cashierName string) string {
	var b strings.Builder

	line := strings.Repeat("-", 32)

	b.WriteString("        CIERRE DE CAJA\n")
	b.WriteString("            HEHA\n")
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "Fecha: %s\n", time.Now().UTC().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Cajero: %s\n", cashierName)
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "Fondo inicial:    Bs. %8.2f\n", rec.InitialCash)
	fmt.Fprintf(&b, "Ventas efectivo:  Bs. %8.2f\n", rec.SalesCash)
	fmt.Fprintf(&b, "Ventas QR:        Bs. %8.2f\n", rec.SalesDigital)
	fmt.Fprintf(&b, "Retiros:          Bs. %8.2f\n", rec.Withdrawals)
	fmt.Fprintf(&b, "Depositos:        Bs. %8.2f\n", rec.Deposits)
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "ESPERADO:         Bs. %8.2f\n", rec.ExpectedCash)
	fmt.Fprintf(&b, "CONTADO:          Bs. %8.2f\n", rec.FinalCash)
	fmt.Fprintf(&b, "DIFERENCIA:       Bs. %8.2f\n", rec.Difference)
	fmt.Fprintf(&b, "(%s)\n", strings.ToUpper(string(rec.Class)))
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "Pedidos del turno: %d\n", report.OrderCount)

	if len(report.TopProducts) > 0 {
		b.WriteString("Mas vendidos:\n")
		for _, p := range report.TopProducts {
			fmt.Fprintf(&b, "  %dx %s\n", p.Qty, p.Name)
		}
	}

	b.WriteString(line + "\n")
	b.WriteString("  Gracias por su trabajo\n")

	return b.String()
}
