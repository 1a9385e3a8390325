package expense

import (
	"fmt"
	"time"

	"github.com/helenHardy/HEHA/internal/audit"
	"github.com/helenHardy/HEHA/internal/auth"
	"github.com/helenHardy/HEHA/internal/config"
	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"
	"github.com/helenHardy/HEHA/internal/reports"

	"github.com/gofiber/fiber/v2"
)

type ExpenseRequest struct {
	Amount      float64 `json:"amount"`
	ExpenseType string  `json:"expense_type"`
	Description string  `json:"description"`
}

type ExpenseResponse struct {
	ID          uint    `json:"id"`
	Amount      float64 `json:"amount"`
	ExpenseType string  `json:"expense_type"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
}

func toExpenseResponse(e models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		ExpenseType: string(e.ExpenseType),
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

// -------------------------------------------------
// POST /api/expenses
// -------------------------------------------------
func CreateExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El monto debe ser mayor a 0")
		}
		etype := models.ExpenseType(body.ExpenseType)
		if etype != models.ExpenseTypeDaily && etype != models.ExpenseTypeFixed {
			return fiber.NewError(fiber.StatusBadRequest, "Tipo de gasto inválido (daily o fixed)")
		}
		if body.Description == "" {
			return fiber.NewError(fiber.StatusBadRequest, "La descripción es obligatoria")
		}

		exp := models.Expense{
			Amount:      body.Amount,
			ExpenseType: etype,
			Description: body.Description,
			CreatedBy:   auth.CurrentUserLabel(c),
		}
		if err := database.DB.Create(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar el gasto")
		}

		userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    auth.CurrentUserLabel(c),
			EntityType:  "expense",
			EntityID:    exp.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Gasto registrado: %s - Bs. %.2f", exp.Description, exp.Amount),
			After:       toExpenseResponse(exp),
		}); logErr != nil {
			fmt.Printf("No se pudo escribir auditoría: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(toExpenseResponse(exp))
	}
}

// -------------------------------------------------
// GET /api/expenses?date=2025-08-14&type=daily
// Acepta los mismos tokens de fecha que el reporte: vacío (hoy),
// YYYY-MM-DD o YYYY-MM.
// -------------------------------------------------
func ListExpensesHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rng, err := reports.ResolveRange(c.Query("date"), time.Now(), cfg.BusinessDayOffsetHours)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida: use YYYY-MM-DD o YYYY-MM")
		}

		dbq := database.DB.
			Where("created_at >= ? AND created_at < ?", rng.Start, rng.End).
			Order("created_at desc")

		if t := c.Query("type"); t != "" {
			etype := models.ExpenseType(t)
			if etype != models.ExpenseTypeDaily && etype != models.ExpenseTypeFixed {
				return fiber.NewError(fiber.StatusBadRequest, "Tipo de gasto inválido (daily o fixed)")
			}
			dbq = dbq.Where("expense_type = ?", etype)
		}

		var expenses []models.Expense
		if err := dbq.Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los gastos")
		}

		breakdown := reports.AggregateExpenses(expenses)

		resp := make([]ExpenseResponse, 0, len(expenses))
		for _, e := range expenses {
			resp = append(resp, toExpenseResponse(e))
		}

		return c.JSON(fiber.Map{
			"date":        rng.Label,
			"total_daily": breakdown.Daily,
			"total_fixed": breakdown.Fixed,
			"expenses":    resp,
		})
	}
}

// -------------------------------------------------
// DELETE /api/expenses/:id  (solo admin)
// -------------------------------------------------
func DeleteExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var exp models.Expense
		if err := database.DB.First(&exp, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Gasto no encontrado")
		}

		if err := database.DB.Delete(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el gasto")
		}

		userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    auth.CurrentUserLabel(c),
			EntityType:  "expense",
			EntityID:    exp.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Gasto eliminado: %s - Bs. %.2f", exp.Description, exp.Amount),
			Before:      toExpenseResponse(exp),
		}); logErr != nil {
			fmt.Printf("No se pudo escribir auditoría: %v\n", logErr)
		}

		return c.JSON(fiber.Map{"deleted": exp.ID})
	}
}
