package cashregister

import (
	"fmt"
	"time"

	"github.com/helenHardy/HEHA/internal/audit"
	"github.com/helenHardy/HEHA/internal/auth"
	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"
	"github.com/helenHardy/HEHA/internal/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type OpenSessionRequest struct {
	InitialCash float64 `json:"initial_cash"`
}

type CloseSessionRequest struct {
	// Puntero para distinguir "no enviado" de 0: un monto contado ausente o
	// no numérico se rechaza, jamás se coacciona a cero (falsearía el arqueo).
	CountedCash *float64 `json:"counted_cash"`
}

type CashMoveRequest struct {
	Type   models.CashMoveType `json:"type"` // withdrawal | deposit
	Amount float64             `json:"amount"`
	Reason string              `json:"reason"`
}

type SessionResponse struct {
	ID          uint    `json:"id"`
	InitialCash float64 `json:"initial_cash"`
	OpenedAt    string  `json:"opened_at"`
	ClosedAt    *string `json:"closed_at"`
	Status      string  `json:"status"`
	OpenedBy    string  `json:"opened_by"`
}

func toSessionResponse(s models.CashRegisterSession) SessionResponse {
	resp := SessionResponse{
		ID:          s.ID,
		InitialCash: s.InitialCash,
		OpenedAt:    s.OpenedAt.UTC().Format(time.RFC3339),
		Status:      string(s.Status),
		OpenedBy:    s.OpenedBy,
	}
	if s.ClosedAt != nil {
		str := s.ClosedAt.UTC().Format(time.RFC3339)
		resp.ClosedAt = &str
	}
	return resp
}

func findOpenSession() (*models.CashRegisterSession, error) {
	var session models.CashRegisterSession
	err := database.DB.
		Where("status = ?", models.SessionStatusOpen).
		Order("opened_at desc").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// -------------------------------------------------
// POST /api/cash-register/open
// -------------------------------------------------
func OpenSessionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OpenSessionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if body.InitialCash < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El fondo inicial no puede ser negativo")
		}

		// A lo sumo una sesión abierta en todo el sistema; el índice parcial
		// de la BD respalda este chequeo contra aperturas simultáneas.
		if open, _ := findOpenSession(); open != nil {
			return fiber.NewError(fiber.StatusConflict, "Ya hay una caja abierta")
		}

		session := models.CashRegisterSession{
			InitialCash: body.InitialCash,
			OpenedAt:    time.Now().UTC(),
			Status:      models.SessionStatusOpen,
			OpenedBy:    auth.CurrentUserLabel(c),
		}

		if err := database.DB.Create(&session).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "No se pudo abrir la caja (¿ya hay una abierta?)")
		}

		userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    session.OpenedBy,
			EntityType:  "cash_register",
			EntityID:    session.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Caja abierta con fondo inicial Bs. %.2f", session.InitialCash),
			After:       toSessionResponse(session),
		}); logErr != nil {
			fmt.Printf("No se pudo escribir auditoría: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(toSessionResponse(session))
	}
}

// -------------------------------------------------
// GET /api/cash-register/current
// Sesión abierta + dinero vivo en gaveta (inicial + ventas efectivo del turno)
// -------------------------------------------------
func CurrentSessionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := findOpenSession()
		if err != nil {
			return c.JSON(fiber.Map{"open": false})
		}

		rng := reports.Range{Start: session.OpenedAt, End: time.Now().UTC()}
		report, err := reports.Compute(rng, 5)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo calcular el estado de la caja")
		}

		drawer := decimal.NewFromFloat(session.InitialCash).
			Add(decimal.NewFromFloat(report.Payments.Cash)).
			Sub(decimal.NewFromFloat(report.TotalWithdrawals)).
			Add(decimal.NewFromFloat(report.TotalDeposits)).
			Round(2)
		drawerF, _ := drawer.Float64()

		return c.JSON(fiber.Map{
			"open":              true,
			"session":           toSessionResponse(*session),
			"sales_cash":        report.Payments.Cash,
			"sales_digital":     report.Payments.Digital,
			"total_withdrawals": report.TotalWithdrawals,
			"total_deposits":    report.TotalDeposits,
			"total_in_drawer":   drawerF,
		})
	}
}

// -------------------------------------------------
// POST /api/cash-register/moves
// Retiros y depósitos manuales durante el turno abierto
// -------------------------------------------------
func CreateCashMoveHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CashMoveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		switch body.Type {
		case models.CashMoveWithdrawal, models.CashMoveDeposit:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Tipo inválido (withdrawal|deposit)")
		}
		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El monto debe ser mayor a 0")
		}
		if body.Reason == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El motivo es obligatorio")
		}

		session, err := findOpenSession()
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, "No hay una caja abierta")
		}

		move := models.CashMove{
			CashRegisterID: session.ID,
			Type:           body.Type,
			Amount:         body.Amount,
			Reason:         body.Reason,
			PerformedBy:    auth.CurrentUserLabel(c),
		}

		if err := database.DB.Create(&move).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar el movimiento")
		}

		return c.Status(fiber.StatusCreated).JSON(move)
	}
}

// -------------------------------------------------
// GET /api/cash-register/moves
// -------------------------------------------------
func ListCashMovesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := findOpenSession()
		if err != nil {
			return c.JSON([]models.CashMove{})
		}

		var moves []models.CashMove
		if err := database.DB.
			Where("cash_register_id = ?", session.ID).
			Order("created_at desc").
			Find(&moves).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los movimientos")
		}
		return c.JSON(moves)
	}
}

// -------------------------------------------------
// POST /api/cash-register/close
// Arqueo y cierre: ventas/retiros/depósitos se calculan sobre la ventana
// apertura→ahora y el arqueo se persiste con precondición optimista
// (status='open') para que un doble cierre concurrente falle con 409.
// -------------------------------------------------
func CloseSessionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CloseSessionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if body.CountedCash == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ingresa el monto contado en caja")
		}
		if *body.CountedCash < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El monto contado no puede ser negativo")
		}

		session, err := findOpenSession()
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, "No hay una caja abierta")
		}

		now := time.Now().UTC()
		rng := reports.Range{Start: session.OpenedAt, End: now}
		report, err := reports.Compute(rng, 10)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el reporte para el cierre")
		}

		rec := Reconcile(
			session.InitialCash,
			report.Payments.Cash,
			report.Payments.Digital,
			report.TotalWithdrawals,
			report.TotalDeposits,
			*body.CountedCash,
		)

		res := database.DB.Model(&models.CashRegisterSession{}).
			Where("id = ? AND status = ?", session.ID, models.SessionStatusOpen).
			Updates(map[string]interface{}{
				"status":              models.SessionStatusClosed,
				"closed_at":           now,
				"final_cash":          rec.FinalCash,
				"expected_cash":       rec.ExpectedCash,
				"difference":          rec.Difference,
				"total_sales_cash":    rec.SalesCash,
				"total_sales_digital": rec.SalesDigital,
				"total_withdrawals":   rec.Withdrawals,
				"total_deposits":      rec.Deposits,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo cerrar la caja")
		}
		if res.RowsAffected == 0 {
			// Otro request cerró la sesión entre la lectura y el update
			return fiber.NewError(fiber.StatusConflict, "La caja ya fue cerrada")
		}

		userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    auth.CurrentUserLabel(c),
			EntityType:  "cash_register",
			EntityID:    session.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Caja cerrada: esperado Bs. %.2f, contado Bs. %.2f (%s)", rec.ExpectedCash, rec.FinalCash, rec.Class),
			After:       rec,
		}); logErr != nil {
			fmt.Printf("No se pudo escribir auditoría: %v\n", logErr)
		}

		return c.JSON(fiber.Map{
			"reconciliation": rec,
			"report":         report,
			"close_ticket":   CloseReportText(rec, report, auth.CurrentUserLabel(c)),
		})
	}
}
