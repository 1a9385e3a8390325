package reports

import (
	"sort"
	"strconv"
	"strings"

	"github.com/helenHardy/HEHA/internal/models"

	"github.com/shopspring/decimal"
)

// ProductInfo es lo mínimo que el agregador necesita de un producto.
type ProductInfo struct {
	Name string
	Cost float64
}

// ProductMap indexa productos por id EN STRING, para tolerar desajustes
// numérico/string entre el almacén y los items históricos.
type ProductMap map[string]ProductInfo

func BuildProductMap(products []models.Product) ProductMap {
	m := make(ProductMap, len(products))
	for _, p := range products {
		m[strconv.FormatUint(uint64(p.ID), 10)] = ProductInfo{Name: p.Name, Cost: p.Cost}
	}
	return m
}

type PaymentBreakdown struct {
	Cash    float64 `json:"cash"`
	Digital float64 `json:"digital"`
	Pending float64 `json:"pending"`
}

type TopProduct struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type OrderAggregate struct {
	GrossSales  float64          `json:"gross_sales"`
	TotalCost   float64          `json:"total_cost"`
	GrossProfit float64          `json:"gross_profit"`
	OrderCount  int              `json:"order_count"`
	Payments    PaymentBreakdown `json:"payment_breakdown"`
	TopProducts []TopProduct     `json:"top_products"`
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// classifyPayment clasifica el método de pago en exactamente uno de tres
// buckets. Los buckets son mutuamente excluyentes y exhaustivos: su suma
// siempre es igual a las ventas brutas.
//
//	cash:    "cash" | "efectivo" (sin distinguir mayúsculas)
//	digital: "qr"
//	pending: todo lo demás, incluido vacío
func classifyPayment(method string) string {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "cash", "efectivo":
		return "cash"
	case "qr":
		return "digital"
	default:
		return "pending"
	}
}

// AggregateOrders calcula ventas, costo y popularidad sobre pedidos ya
// traídos del almacén. Función pura: sin I/O, sin estado compartido, nunca
// falla; los datos faltantes degradan a cero en vez de abortar.
//
// El costo por item usa el snapshot cost_at_sale cuando existe (> 0) y cae al
// costo actual del producto para filas históricas. Un item cuyo producto ya
// no existe contribuye costo 0 y queda fuera del ranking de popularidad.
//
// La aritmética corre sobre decimales y se redondea a 2 cifras (precisión de
// moneda) recién al exportar, de modo que cash+digital+pending cuadre exacto
// con las ventas brutas aun tras sumar muchos montos pequeños.
func AggregateOrders(orders []models.Order, products ProductMap, topN int) OrderAggregate {
	grossSales := decimal.Zero
	totalCost := decimal.Zero
	cash := decimal.Zero
	digital := decimal.Zero
	pending := decimal.Zero

	qtyByName := make(map[string]int)
	var nameOrder []string // orden de primera aparición, para desempate estable

	for _, order := range orders {
		amount := decimal.NewFromFloat(order.TotalAmount)
		grossSales = grossSales.Add(amount)

		switch classifyPayment(order.PaymentMethod) {
		case "cash":
			cash = cash.Add(amount)
		case "digital":
			digital = digital.Add(amount)
		default:
			pending = pending.Add(amount)
		}

		for _, item := range order.Items {
			qty := item.Quantity
			if qty <= 0 {
				qty = 1
			}

			info, found := products[strconv.FormatUint(uint64(item.ProductID), 10)]

			switch {
			case item.CostAtSale > 0:
				totalCost = totalCost.Add(decimal.NewFromFloat(item.CostAtSale).Mul(decimal.NewFromInt(int64(qty))))
			case found:
				totalCost = totalCost.Add(decimal.NewFromFloat(info.Cost).Mul(decimal.NewFromInt(int64(qty))))
			}
			// producto eliminado y sin snapshot: costo 0, no es un error

			if found {
				if _, seen := qtyByName[info.Name]; !seen {
					nameOrder = append(nameOrder, info.Name)
				}
				qtyByName[info.Name] += qty
			}
		}
	}

	top := make([]TopProduct, 0, len(nameOrder))
	for _, name := range nameOrder {
		top = append(top, TopProduct{Name: name, Qty: qtyByName[name]})
	}
	// SliceStable conserva el orden de primera aparición entre empates
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Qty > top[j].Qty
	})
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}

	return OrderAggregate{
		GrossSales:  round2(grossSales),
		TotalCost:   round2(totalCost),
		GrossProfit: round2(grossSales.Sub(totalCost)),
		OrderCount:  len(orders),
		Payments: PaymentBreakdown{
			Cash:    round2(cash),
			Digital: round2(digital),
			Pending: round2(pending),
		},
		TopProducts: top,
	}
}

type ExpenseBreakdown struct {
	Daily float64          `json:"daily"`
	Fixed float64          `json:"fixed"`
	List  []models.Expense `json:"list"`
}

// AggregateExpenses separa los gastos del rango en variables (daily) y fijos
// (fixed). Un expense_type desconocido no suma a ningún total pero se
// conserva en la lista para mostrarlo; no es un error.
func AggregateExpenses(expenses []models.Expense) ExpenseBreakdown {
	daily := decimal.Zero
	fixed := decimal.Zero

	for _, e := range expenses {
		amt := decimal.NewFromFloat(e.Amount)
		switch e.ExpenseType {
		case models.ExpenseTypeDaily:
			daily = daily.Add(amt)
		case models.ExpenseTypeFixed:
			fixed = fixed.Add(amt)
		}
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	return ExpenseBreakdown{
		Daily: round2(daily),
		Fixed: round2(fixed),
		List:  expenses,
	}
}

// SumCashMoves totaliza retiros y depósitos por separado.
func SumCashMoves(moves []models.CashMove) (withdrawals, deposits float64) {
	w := decimal.Zero
	d := decimal.Zero
	for _, m := range moves {
		switch m.Type {
		case models.CashMoveWithdrawal:
			w = w.Add(decimal.NewFromFloat(m.Amount))
		case models.CashMoveDeposit:
			d = d.Add(decimal.NewFromFloat(m.Amount))
		}
	}
	return round2(w), round2(d)
}
