package orders_test

import (
	"errors"
	"testing"

	"github.com/helenHardy/HEHA/internal/models"
	"github.com/helenHardy/HEHA/internal/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBody() *orders.CreateOrderRequest {
	return &orders.CreateOrderRequest{
		OrderType:     models.OrderTypeMesa,
		PaymentMethod: "cash",
		Items:         []orders.OrderItemRequest{{ProductID: 1, Quantity: 1}},
	}
}

func assertBadRequest(t *testing.T, err error, motivo string) {
	t.Helper()
	require.Error(t, err, motivo)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "El error debe ser un *fiber.Error")
	assert.Equal(t, fiber.StatusBadRequest, fe.Code, motivo)
}

// Los casos de validación fallan antes de tocar la base de datos, por eso se
// pueden probar sin conexión.

func TestBuildOrder_CarritoVacio(t *testing.T) {
	body := validBody()
	body.Items = nil

	_, err := orders.BuildOrder(body, "Cajero")
	assertBadRequest(t, err, "Un carrito vacío se rechaza")
}

func TestBuildOrder_TipoInvalido(t *testing.T) {
	body := validBody()
	body.OrderType = "drive-thru"

	_, err := orders.BuildOrder(body, "Cajero")
	assertBadRequest(t, err, "Solo mesa, llevar y whatsapp son tipos válidos")
}

func TestBuildOrder_MetodoDePagoInvalido(t *testing.T) {
	body := validBody()
	body.PaymentMethod = "cheque"

	_, err := orders.BuildOrder(body, "Cajero")
	assertBadRequest(t, err, "Solo cash, qr y pendiente son métodos válidos")
}

// TestBuildOrder_TelefonoDelivery: un pedido whatsapp exige teléfono boliviano
// de 7 u 8 dígitos.
func TestBuildOrder_TelefonoDelivery(t *testing.T) {
	for _, phone := range []string{
		"123",       // muy corto
		"701234567", // muy largo
		"7012345a",  // no numérico
		"",          // vacío
	} {
		body := validBody()
		body.OrderType = models.OrderTypeWhatsApp
		body.CustomerPhone = phone

		_, err := orders.BuildOrder(body, "Cajero")
		assertBadRequest(t, err, "El teléfono "+phone+" debe rechazarse")
	}
}

func TestBuildOrder_AdelantoNegativo(t *testing.T) {
	body := validBody()
	body.AdvanceAmount = -10

	_, err := orders.BuildOrder(body, "Cajero")
	assertBadRequest(t, err, "El adelanto negativo se rechaza")
}

func TestBuildOrder_CantidadCero(t *testing.T) {
	body := validBody()
	body.Items = []orders.OrderItemRequest{{ProductID: 1, Quantity: 0}}

	_, err := orders.BuildOrder(body, "Cajero")
	assertBadRequest(t, err, "Una cantidad 0 en el carrito se rechaza")
}
