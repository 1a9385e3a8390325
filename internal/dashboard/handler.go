package dashboard

import (
	"log"
	"time"

	"github.com/helenHardy/HEHA/internal/auth"
	"github.com/helenHardy/HEHA/internal/config"
	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"
	"github.com/helenHardy/HEHA/internal/reports"

	"github.com/gofiber/fiber/v2"
)

type SummaryResponse struct {
	Date          string               `json:"date"`
	TotalSales    float64              `json:"total_sales"`
	NetProfit     *float64             `json:"net_profit,omitempty"` // solo admin
	OrderCount    int                  `json:"order_count"`
	CustomerCount int                  `json:"customer_count"`
	Payments      reports.PaymentBreakdown `json:"payment_breakdown"`
	TopProducts   []reports.TopProduct `json:"top_products"`
	PendingKiosk  int64                `json:"pending_kiosk_orders"`
}

// -------------------------------------------------
// GET /api/dashboard/summary
// Reporte de hoy recortado para el panel; la utilidad solo la ve el admin
// -------------------------------------------------
func SummaryHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rng, err := reports.ResolveRange("", time.Now(), cfg.BusinessDayOffsetHours)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo resolver el día comercial")
		}

		report, err := reports.Compute(rng, 5)
		if err != nil {
			log.Printf("Error generando resumen del panel: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el resumen")
		}

		var pendingKiosk int64
		if err := database.DB.Model(&models.Order{}).
			Where("status = ? AND cashier_name = ?", models.OrderStatusPending, "Kiosco").
			Count(&pendingKiosk).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo contar los pedidos del kiosco")
		}

		resp := SummaryResponse{
			Date:          report.Label,
			TotalSales:    report.TotalSales,
			OrderCount:    report.OrderCount,
			CustomerCount: report.CustomerCount,
			Payments:      report.Payments,
			TopProducts:   report.TopProducts,
			PendingKiosk:  pendingKiosk,
		}

		if role, ok := c.Locals(auth.CtxUserRoleKey).(models.UserRole); ok && role == models.RoleAdmin {
			net := report.NetProfit
			resp.NetProfit = &net
		}

		return c.JSON(resp)
	}
}

type SalesChartPoint struct {
	Date    string  `json:"date"`
	Cash    float64 `json:"cash"`
	Digital float64 `json:"digital"`
	Pending float64 `json:"pending"`
	Total   float64 `json:"total"`
}

type SalesChartResponse struct {
	From   string            `json:"from"`
	To     string            `json:"to"`
	Points []SalesChartPoint `json:"points"`
}

// -------------------------------------------------
// GET /api/dashboard/sales-chart?days=30
// Serie de ventas por día comercial para el gráfico del panel
// -------------------------------------------------
func SalesChartHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 30)
		if days <= 0 || days > 366 {
			return fiber.NewError(fiber.StatusBadRequest, "days inválido (1-366)")
		}

		today, err := reports.ResolveRange("", time.Now(), cfg.BusinessDayOffsetHours)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo resolver el día comercial")
		}

		start := today.Start.AddDate(0, 0, -(days - 1))
		end := today.End

		var orderRows []models.Order
		if err := database.DB.
			Where("status = ? AND created_at >= ? AND created_at < ?", models.OrderStatusCompleted, start, end).
			Order("created_at asc").
			Find(&orderRows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los pedidos")
		}

		// Un bucket por día comercial, incluso sin ventas
		points := make([]SalesChartPoint, 0, days)
		index := make(map[string]int, days)
		buckets := make(map[string][]models.Order, days)
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			label := d.Format("2006-01-02")
			index[label] = len(points)
			points = append(points, SalesChartPoint{Date: label})
		}

		// Misma convención que el reporte: ventanas calendario en UTC, el
		// offset comercial solo decide qué día es "hoy"
		for _, o := range orderRows {
			label := o.CreatedAt.UTC().Format("2006-01-02")
			if _, ok := index[label]; ok {
				buckets[label] = append(buckets[label], o)
			}
		}

		for label, dayOrders := range buckets {
			agg := reports.AggregateOrders(dayOrders, nil, 0)
			i := index[label]
			points[i].Cash = agg.Payments.Cash
			points[i].Digital = agg.Payments.Digital
			points[i].Pending = agg.Payments.Pending
			points[i].Total = agg.GrossSales
		}

		return c.JSON(SalesChartResponse{
			From:   start.Format("2006-01-02"),
			To:     today.Start.Format("2006-01-02"),
			Points: points,
		})
	}
}
