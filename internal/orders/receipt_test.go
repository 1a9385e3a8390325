package orders_test

import (
	"strings"
	"testing"

	"github.com/helenHardy/HEHA/internal/models"
	"github.com/helenHardy/HEHA/internal/orders"

	"github.com/stretchr/testify/assert"
)

func sampleItems() []orders.OrderItemResponse {
	return []orders.OrderItemResponse{
		{ProductID: 1, ProductName: "Hamburguesa Doble", Quantity: 2, PriceAtSale: 25, Subtotal: 50},
		{ProductID: 3, ProductName: "Refresco", Quantity: 1, PriceAtSale: 5, Subtotal: 5},
	}
}

// TestReceiptText_TicketMesa: el ticket de mesa lleva número, cajero, items y
// total, sin la sección de delivery.
func TestReceiptText_TicketMesa(t *testing.T) {
	order := &models.Order{
		ID:            42,
		TotalAmount:   55,
		OrderType:     models.OrderTypeMesa,
		PaymentMethod: "cash",
		CustomerName:  "Carla",
		CashierName:   "Admin",
	}

	ticket := orders.ReceiptText(order, sampleItems())

	assert.Contains(t, ticket, "HEHA")
	assert.Contains(t, ticket, "Ticket #42")
	assert.Contains(t, ticket, "Cliente: CARLA")
	assert.Contains(t, ticket, "Atendido por: Admin")
	assert.Contains(t, ticket, "Pago: EFECTIVO")
	assert.Contains(t, ticket, "2x")
	assert.Contains(t, ticket, "TOTAL:            Bs.    55.00")
	assert.NotContains(t, ticket, "DATOS DELIVERY", "Un pedido de mesa no lleva datos de delivery")
	assert.NotContains(t, ticket, "Adelanto", "Sin adelanto no se imprime la línea de saldo")
}

// TestReceiptText_DeliveryConAdelanto: un pedido whatsapp agrega los datos de
// delivery y el desglose adelanto/saldo.
func TestReceiptText_DeliveryConAdelanto(t *testing.T) {
	order := &models.Order{
		ID:               7,
		TotalAmount:      55,
		OrderType:        models.OrderTypeWhatsApp,
		PaymentMethod:    "qr",
		CustomerPhone:    "70123456",
		DeliveryLocation: "Av. Ballivián 123",
		AdvanceAmount:    20,
		CashierName:      "Cajero",
	}

	ticket := orders.ReceiptText(order, sampleItems())

	assert.Contains(t, ticket, "DATOS DELIVERY:")
	assert.Contains(t, ticket, "Tel: 70123456")
	assert.Contains(t, ticket, "Adelanto:         Bs.    20.00")
	assert.Contains(t, ticket, "SALDO:            Bs.    35.00")
	assert.Contains(t, ticket, "Pago: QR")
}

// TestReceiptText_NombreLargo: un nombre de producto más largo que la columna
// se trunca sin partir caracteres multibyte (ñ, tildes).
func TestReceiptText_NombreLargo(t *testing.T) {
	order := &models.Order{ID: 1, TotalAmount: 10, OrderType: models.OrderTypeMesa, PaymentMethod: "cash"}
	items := []orders.OrderItemResponse{
		{ProductID: 1, ProductName: "Salchipapa Española Extra Picañta", Quantity: 1, Subtotal: 10},
	}

	ticket := orders.ReceiptText(order, items)

	for _, line := range strings.Split(ticket, "\n") {
		assert.True(t, len([]rune(line)) <= 34, "Cada línea respeta el ancho de la impresora: %q", line)
	}
	assert.True(t, strings.Contains(ticket, "Salchipapa Española "), "El nombre se trunca a 20 caracteres visibles")
}

// TestReceiptText_ProductoEliminado: un item sin nombre (producto borrado)
// imprime el id en su lugar.
func TestReceiptText_ProductoEliminado(t *testing.T) {
	order := &models.Order{ID: 1, TotalAmount: 10, OrderType: models.OrderTypeMesa, PaymentMethod: "cash"}
	items := []orders.OrderItemResponse{{ProductID: 99, Quantity: 1, Subtotal: 10}}

	ticket := orders.ReceiptText(order, items)

	assert.Contains(t, ticket, "Producto #99")
}

// TestWhatsAppMessage_SinAdelanto: sin adelanto se muestra el método de pago.
func TestWhatsAppMessage_SinAdelanto(t *testing.T) {
	order := &models.Order{
		ID:            7,
		TotalAmount:   55,
		OrderType:     models.OrderTypeWhatsApp,
		PaymentMethod: "cash",
		CustomerPhone: "70123456",
	}

	msg := orders.WhatsAppMessage(order, sampleItems())

	assert.Contains(t, msg, "*NUEVO PEDIDO DELIVERY*")
	assert.Contains(t, msg, "*Cliente:* 70123456")
	assert.Contains(t, msg, "2x Hamburguesa Doble")
	assert.Contains(t, msg, "*Total:* Bs. 55.00")
	assert.Contains(t, msg, "*Pago:* Efectivo")
	assert.Contains(t, msg, "Solicitar ubicación", "Sin ubicación se pide al cliente")
	assert.NotContains(t, msg, "SALDO A PAGAR")
}

// TestWhatsAppMessage_ConAdelanto: con adelanto el mensaje muestra el saldo a
// pagar en vez del método.
func TestWhatsAppMessage_ConAdelanto(t *testing.T) {
	order := &models.Order{
		ID:               7,
		TotalAmount:      55,
		OrderType:        models.OrderTypeWhatsApp,
		PaymentMethod:    "qr",
		CustomerPhone:    "70123456",
		DeliveryLocation: "Av. Ballivián 123",
		AdvanceAmount:    20,
	}

	msg := orders.WhatsAppMessage(order, sampleItems())

	assert.Contains(t, msg, "*Adelanto:* Bs. 20.00")
	assert.Contains(t, msg, "*SALDO A PAGAR:* Bs. 35.00")
	assert.Contains(t, msg, "*Ubicación:* Av. Ballivián 123")
	assert.NotContains(t, msg, "*Pago:*")
}
