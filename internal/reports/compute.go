package reports

import (
	"fmt"

	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"

	"github.com/shopspring/decimal"
)

// OrderSummary es la fila del detalle de transacciones del reporte.
type OrderSummary struct {
	ID            uint    `json:"id"`
	CustomerName  string  `json:"customer_name"`
	PaymentMethod string  `json:"payment_method"`
	OrderType     string  `json:"order_type"`
	TotalAmount   float64 `json:"total_amount"`
	CreatedAt     string  `json:"created_at"`
}

type ReportResult struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"` // último día calendario incluido
	Label     string `json:"label"`

	TotalSales  float64 `json:"total_sales"`
	TotalCost   float64 `json:"total_cost"`
	GrossProfit float64 `json:"gross_profit"`
	// NetProfit = utilidad bruta − gastos (daily + fixed) del mismo rango.
	// Fórmula canónica única; la bruta se expone aparte.
	NetProfit float64 `json:"net_profit"`

	OrderCount    int `json:"order_count"`
	CustomerCount int `json:"customer_count"`

	Payments    PaymentBreakdown `json:"payment_breakdown"`
	TopProducts []TopProduct     `json:"top_products"`
	Expenses    ExpenseBreakdown `json:"expenses"`

	TotalWithdrawals float64 `json:"total_withdrawals"`
	TotalDeposits    float64 `json:"total_deposits"`

	Orders []OrderSummary `json:"orders"`
}

// Compute arma el reporte completo para una ventana. Si CUALQUIER consulta
// requerida falla, el reporte entero falla: nunca se devuelve un reporte
// parcial calculado sobre un subconjunto de colecciones.
func Compute(rng Range, topN int) (*ReportResult, error) {
	var orders []models.Order
	if err := database.DB.Preload("Items").
		Where("status = ? AND created_at >= ? AND created_at < ?", models.OrderStatusCompleted, rng.Start, rng.End).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("no se pudieron obtener los pedidos: %w", err)
	}

	var products []models.Product
	if err := database.DB.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("no se pudieron obtener los productos: %w", err)
	}

	var expenses []models.Expense
	if err := database.DB.
		Where("created_at >= ? AND created_at < ?", rng.Start, rng.End).
		Order("created_at desc").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("no se pudieron obtener los gastos: %w", err)
	}

	var moves []models.CashMove
	if err := database.DB.
		Where("created_at >= ? AND created_at < ?", rng.Start, rng.End).
		Find(&moves).Error; err != nil {
		return nil, fmt.Errorf("no se pudieron obtener los movimientos de caja: %w", err)
	}

	agg := AggregateOrders(orders, BuildProductMap(products), topN)
	exp := AggregateExpenses(expenses)
	withdrawals, deposits := SumCashMoves(moves)

	netProfit := decimal.NewFromFloat(agg.GrossProfit).
		Sub(decimal.NewFromFloat(exp.Daily)).
		Sub(decimal.NewFromFloat(exp.Fixed))

	summaries := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, OrderSummary{
			ID:            o.ID,
			CustomerName:  o.CustomerName,
			PaymentMethod: o.PaymentMethod,
			OrderType:     string(o.OrderType),
			TotalAmount:   o.TotalAmount,
			CreatedAt:     o.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}

	return &ReportResult{
		StartDate:        rng.Start.Format("2006-01-02"),
		EndDate:          rng.LastDay().Format("2006-01-02"),
		Label:            rng.Label,
		TotalSales:       agg.GrossSales,
		TotalCost:        agg.TotalCost,
		GrossProfit:      agg.GrossProfit,
		NetProfit:        round2(netProfit),
		OrderCount:       agg.OrderCount,
		CustomerCount:    agg.OrderCount, // el front original igualaba clientes a pedidos
		Payments:         agg.Payments,
		TopProducts:      agg.TopProducts,
		Expenses:         exp,
		TotalWithdrawals: withdrawals,
		TotalDeposits:    deposits,
		Orders:           summaries,
	}, nil
}
