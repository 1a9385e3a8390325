package reports_test

import (
	"testing"

	"github.com/helenHardy/HEHA/internal/models"
	"github.com/helenHardy/HEHA/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProductMap() reports.ProductMap {
	return reports.BuildProductMap([]models.Product{
		{ID: 1, Name: "Hamburguesa", Price: 25, Cost: 10},
		{ID: 2, Name: "Salchipapa", Price: 15, Cost: 6},
		{ID: 3, Name: "Refresco", Price: 5, Cost: 2},
	})
}

func order(amount float64, method string, items ...models.OrderItem) models.Order {
	return models.Order{
		TotalAmount:   amount,
		Status:        models.OrderStatusCompleted,
		PaymentMethod: method,
		Items:         items,
	}
}

// TestAggregateOrders_BucketsDePago: los tres buckets son exhaustivos y
// mutuamente excluyentes; su suma siempre cuadra con las ventas brutas.
func TestAggregateOrders_BucketsDePago(t *testing.T) {
	ordersIn := []models.Order{
		order(25, "cash"),
		order(15, "efectivo"), // alias histórico de cash
		order(10, "QR"),       // sin distinguir mayúsculas
		order(30, "qr"),
		order(20, "pendiente"),
		order(5, ""),         // vacío cuenta como pendiente
		order(8, "tarjeta"),  // método desconocido cuenta como pendiente
	}

	agg := reports.AggregateOrders(ordersIn, testProductMap(), 10)

	assert.Equal(t, 40.0, agg.Payments.Cash, "cash + efectivo")
	assert.Equal(t, 40.0, agg.Payments.Digital, "qr en cualquier caja")
	assert.Equal(t, 33.0, agg.Payments.Pending, "pendiente + vacío + desconocido")
	assert.Equal(t, 113.0, agg.GrossSales)
	assert.Equal(t, agg.GrossSales, agg.Payments.Cash+agg.Payments.Digital+agg.Payments.Pending,
		"Los buckets deben sumar exactamente las ventas brutas")
	assert.Equal(t, 7, agg.OrderCount)
}

// TestAggregateOrders_CostoConSnapshot: el costo por item usa cost_at_sale
// cuando existe y cae al costo actual del producto en filas históricas.
func TestAggregateOrders_CostoConSnapshot(t *testing.T) {
	ordersIn := []models.Order{
		order(50, "cash",
			models.OrderItem{ProductID: 1, Quantity: 2, PriceAtSale: 25, CostAtSale: 9}, // snapshot manda
		),
		order(15, "cash",
			models.OrderItem{ProductID: 2, Quantity: 1, PriceAtSale: 15, CostAtSale: 0}, // fila histórica
		),
	}

	agg := reports.AggregateOrders(ordersIn, testProductMap(), 10)

	// 2×9 del snapshot + 1×6 del costo actual
	assert.Equal(t, 24.0, agg.TotalCost)
	assert.Equal(t, 65.0, agg.GrossSales)
	assert.Equal(t, 41.0, agg.GrossProfit)
}

// TestAggregateOrders_ProductoEliminado: un item cuyo producto ya no existe
// contribuye costo 0 y queda fuera del ranking, sin abortar el reporte.
func TestAggregateOrders_ProductoEliminado(t *testing.T) {
	ordersIn := []models.Order{
		order(25, "cash",
			models.OrderItem{ProductID: 99, Quantity: 3, PriceAtSale: 25}, // producto borrado
			models.OrderItem{ProductID: 3, Quantity: 1, PriceAtSale: 5, CostAtSale: 2},
		),
	}

	agg := reports.AggregateOrders(ordersIn, testProductMap(), 10)

	assert.Equal(t, 2.0, agg.TotalCost, "El producto eliminado contribuye costo 0")
	require.Len(t, agg.TopProducts, 1, "El producto eliminado no entra al ranking")
	assert.Equal(t, "Refresco", agg.TopProducts[0].Name)
}

// TestAggregateOrders_TopNDesempateEstable: con [A:5, B:5, C:3] y topN=2 el
// resultado es [A, B]; el empate se resuelve por orden de primera aparición
// en los datos, nunca al azar.
func TestAggregateOrders_TopNDesempateEstable(t *testing.T) {
	ordersIn := []models.Order{
		order(0, "cash",
			models.OrderItem{ProductID: 1, Quantity: 5}, // Hamburguesa aparece primero
			models.OrderItem{ProductID: 2, Quantity: 5},
			models.OrderItem{ProductID: 3, Quantity: 3},
		),
	}

	agg := reports.AggregateOrders(ordersIn, testProductMap(), 2)

	require.Len(t, agg.TopProducts, 2)
	assert.Equal(t, "Hamburguesa", agg.TopProducts[0].Name)
	assert.Equal(t, 5, agg.TopProducts[0].Qty)
	assert.Equal(t, "Salchipapa", agg.TopProducts[1].Name)
	assert.Equal(t, 5, agg.TopProducts[1].Qty)
}

// TestAggregateOrders_CantidadNoPositiva: una cantidad 0 o negativa en datos
// corruptos se trata como 1, no como 0 ni como error.
func TestAggregateOrders_CantidadNoPositiva(t *testing.T) {
	ordersIn := []models.Order{
		order(25, "cash",
			models.OrderItem{ProductID: 1, Quantity: 0, CostAtSale: 10},
			models.OrderItem{ProductID: 2, Quantity: -3, CostAtSale: 6},
		),
	}

	agg := reports.AggregateOrders(ordersIn, testProductMap(), 10)

	assert.Equal(t, 16.0, agg.TotalCost, "Cada item corrupto cuenta como cantidad 1")
	require.Len(t, agg.TopProducts, 2)
	assert.Equal(t, 1, agg.TopProducts[0].Qty)
}

// TestAggregateOrders_Idempotente: agregar dos veces los mismos datos produce
// el mismo resultado; la función no guarda estado entre llamadas.
func TestAggregateOrders_Idempotente(t *testing.T) {
	ordersIn := []models.Order{
		order(25.50, "cash", models.OrderItem{ProductID: 1, Quantity: 1, CostAtSale: 10}),
		order(13.30, "qr", models.OrderItem{ProductID: 2, Quantity: 2, CostAtSale: 6}),
	}
	pm := testProductMap()

	primera := reports.AggregateOrders(ordersIn, pm, 10)
	segunda := reports.AggregateOrders(ordersIn, pm, 10)

	assert.Equal(t, primera, segunda)
}

// TestAggregateOrders_Vacio: sin pedidos todo es cero y el ranking queda
// vacío, no nil panic.
func TestAggregateOrders_Vacio(t *testing.T) {
	agg := reports.AggregateOrders(nil, nil, 10)

	assert.Zero(t, agg.GrossSales)
	assert.Zero(t, agg.TotalCost)
	assert.Zero(t, agg.OrderCount)
	assert.Empty(t, agg.TopProducts)
}

// TestAggregateOrders_RedondeoDeMonedas: la suma de muchos montos con
// centavos cuadra exacto a 2 decimales, sin residuos de punto flotante.
func TestAggregateOrders_RedondeoDeMonedas(t *testing.T) {
	var ordersIn []models.Order
	for i := 0; i < 100; i++ {
		ordersIn = append(ordersIn, order(0.10, "cash"))
	}

	agg := reports.AggregateOrders(ordersIn, nil, 0)

	assert.Equal(t, 10.0, agg.GrossSales, "100 × 0.10 debe ser exactamente 10, no 9.999999...")
	assert.Equal(t, 10.0, agg.Payments.Cash)
}

// TestAggregateExpenses_SeparaPorTipo: daily y fixed se totalizan por
// separado; un tipo desconocido no suma pero se conserva en la lista.
func TestAggregateExpenses_SeparaPorTipo(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100, ExpenseType: models.ExpenseTypeDaily},
		{Amount: 50.50, ExpenseType: models.ExpenseTypeDaily},
		{Amount: 800, ExpenseType: models.ExpenseTypeFixed},
		{Amount: 33, ExpenseType: "otro"},
	}

	breakdown := reports.AggregateExpenses(expenses)

	assert.Equal(t, 150.50, breakdown.Daily)
	assert.Equal(t, 800.0, breakdown.Fixed)
	assert.Len(t, breakdown.List, 4, "El gasto de tipo desconocido sigue en la lista")
}

// TestAggregateExpenses_ListaNuncaNil: con entrada nil la lista serializa
// como [] en JSON, no como null.
func TestAggregateExpenses_ListaNuncaNil(t *testing.T) {
	breakdown := reports.AggregateExpenses(nil)

	assert.NotNil(t, breakdown.List)
	assert.Empty(t, breakdown.List)
}

// TestSumCashMoves: retiros y depósitos se totalizan por separado.
func TestSumCashMoves(t *testing.T) {
	moves := []models.CashMove{
		{Amount: 50, Type: models.CashMoveWithdrawal},
		{Amount: 20.50, Type: models.CashMoveWithdrawal},
		{Amount: 100, Type: models.CashMoveDeposit},
	}

	withdrawals, deposits := reports.SumCashMoves(moves)

	assert.Equal(t, 70.50, withdrawals)
	assert.Equal(t, 100.0, deposits)
}
