package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/helenHardy/HEHA/internal/models"
)

// ReceiptText genera el ticket de venta en texto plano para impresora
// térmica de 32 columnas.
func ReceiptText(order *models.Order, items []OrderItemResponse) string {
	var b strings.Builder

	line := strings.Repeat("-", 32)

	b.WriteString("            HEHA\n")
	b.WriteString("      Comida para llevar\n")
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "Ticket #%d\n", order.ID)
	fmt.Fprintf(&b, "Fecha: %s\n", time.Now().UTC().Format("2006-01-02 15:04"))
	if order.CustomerName != "" {
		fmt.Fprintf(&b, "Cliente: %s\n", strings.ToUpper(order.CustomerName))
	}
	fmt.Fprintf(&b, "Atendido por: %s\n", order.CashierName)
	fmt.Fprintf(&b, "Tipo: %s\n", strings.ToUpper(string(order.OrderType)))
	fmt.Fprintf(&b, "Pago: %s\n", strings.ToUpper(paymentLabel(order.PaymentMethod)))

	if order.OrderType == models.OrderTypeWhatsApp {
		b.WriteString(line + "\n")
		b.WriteString("DATOS DELIVERY:\n")
		fmt.Fprintf(&b, "Tel: %s\n", order.CustomerPhone)
		if order.DeliveryLocation != "" {
			fmt.Fprintf(&b, "Ubicacion: %s\n", order.DeliveryLocation)
		}
	}

	b.WriteString(line + "\n")
	for _, it := range items {
		name := it.ProductName
		if name == "" {
			name = fmt.Sprintf("Producto #%d", it.ProductID)
		}
		fmt.Fprintf(&b, "%dx %-20s %8.2f\n", it.Quantity, truncate(name, 20), it.Subtotal)
	}
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "TOTAL:            Bs. %8.2f\n", order.TotalAmount)

	if order.AdvanceAmount > 0 {
		fmt.Fprintf(&b, "Adelanto:         Bs. %8.2f\n", order.AdvanceAmount)
		fmt.Fprintf(&b, "SALDO:            Bs. %8.2f\n", order.TotalAmount-order.AdvanceAmount)
	}

	b.WriteString(line + "\n")
	b.WriteString(" Gracias por su preferencia!\n")
	b.WriteString(" No valido para credito fiscal\n")

	return b.String()
}

// WhatsAppMessage arma el mensaje que el cajero copia y envía al repartidor.
func WhatsAppMessage(order *models.Order, items []OrderItemResponse) string {
	var b strings.Builder

	b.WriteString("*NUEVO PEDIDO DELIVERY*\n\n")
	fmt.Fprintf(&b, "*Cliente:* %s\n", order.CustomerPhone)
	b.WriteString("*Pedido:*\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%dx %s\n", it.Quantity, it.ProductName)
	}

	fmt.Fprintf(&b, "\n*Total:* Bs. %.2f", order.TotalAmount)

	if order.AdvanceAmount > 0 {
		fmt.Fprintf(&b, "\n*Adelanto:* Bs. %.2f", order.AdvanceAmount)
		fmt.Fprintf(&b, "\n*SALDO A PAGAR:* Bs. %.2f", order.TotalAmount-order.AdvanceAmount)
	} else {
		fmt.Fprintf(&b, "\n*Pago:* %s", paymentLabel(order.PaymentMethod))
	}

	location := order.DeliveryLocation
	if location == "" {
		location = "Solicitar ubicación"
	}
	fmt.Fprintf(&b, "\n*Ubicación:* %s\n", location)

	b.WriteString("\n_Por favor confirmar recepción._")

	return b.String()
}

func paymentLabel(method string) string {
	switch method {
	case "qr":
		return "QR"
	case "pendiente":
		return "Pendiente"
	default:
		return "Efectivo"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
