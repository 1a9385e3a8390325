package kiosk

import (
	"fmt"

	"github.com/helenHardy/HEHA/internal/audit"
	"github.com/helenHardy/HEHA/internal/auth"
	"github.com/helenHardy/HEHA/internal/catalog"
	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"
	"github.com/helenHardy/HEHA/internal/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const kioskCashierName = "Kiosco"

type PlaceOrderRequest struct {
	DiningOption string                    `json:"dining_option"` // eat-in | takeout
	CustomerName string                    `json:"customer_name"`
	Items        []orders.OrderItemRequest `json:"items"`
}

// -------------------------------------------------
// GET /api/kiosk/menu
// Productos activos + categorías, con caché en memoria de 60s
// -------------------------------------------------
func MenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, categories, err := catalog.Menu()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo cargar el menú")
		}

		prodResp := make([]catalog.ProductResponse, 0, len(products))
		for _, p := range products {
			prodResp = append(prodResp, catalog.ProductResponse{
				ID:          p.ID,
				Name:        p.Name,
				Price:       p.Price,
				Cost:        0, // el costo no se expone al kiosco
				Category:    p.Category,
				Description: p.Description,
				ImageURL:    p.ImageURL,
				Active:      p.Active,
			})
		}

		catResp := make([]catalog.CategoryResponse, 0, len(categories))
		for _, cat := range categories {
			catResp = append(catResp, catalog.CategoryResponse{ID: cat.ID, Name: cat.Name})
		}

		return c.JSON(fiber.Map{
			"products":   prodResp,
			"categories": catResp,
		})
	}
}

// -------------------------------------------------
// POST /api/kiosk/orders
// El pedido nace pending y sin método de pago; el cajero lo cobra y aprueba.
// -------------------------------------------------
func PlaceOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PlaceOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		orderType := models.OrderTypeMesa
		if body.DiningOption == "takeout" {
			orderType = models.OrderTypeLlevar
		}

		order, err := orders.BuildOrder(&orders.CreateOrderRequest{
			OrderType:     orderType,
			PaymentMethod: "pendiente",
			CustomerName:  body.CustomerName,
			Items:         body.Items,
		}, kioskCashierName)
		if err != nil {
			return err
		}

		order.Status = models.OrderStatusPending
		order.PaymentMethod = "" // se fija recién al aprobar
		order.ClaimCode = uuid.NewString()

		if err := database.DB.Create(order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el pedido")
		}

		// El código corto es lo que ve el cliente en la pantalla de éxito
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"order_id":   order.ID,
			"claim_code": order.ClaimCode,
			"short_code": order.ClaimCode[:8],
			"total":      order.TotalAmount,
		})
	}
}

// -------------------------------------------------
// GET /api/kiosk/orders/pending
// -------------------------------------------------
func ListPendingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var pending []models.Order
		if err := database.DB.Preload("Items").
			Where("status = ? AND cashier_name = ?", models.OrderStatusPending, kioskCashierName).
			Order("created_at asc").
			Find(&pending).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los pedidos pendientes")
		}
		return c.JSON(pending)
	}
}

// -------------------------------------------------
// GET /api/kiosk/orders/pending-count
// El terminal lo consulta cada 10s para el badge de notificación
// -------------------------------------------------
func PendingCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var count int64
		if err := database.DB.Model(&models.Order{}).
			Where("status = ? AND cashier_name = ?", models.OrderStatusPending, kioskCashierName).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo contar los pedidos pendientes")
		}
		return c.JSON(fiber.Map{"count": count})
	}
}

type ApproveRequest struct {
	PaymentMethod string `json:"payment_method"` // cash | qr
}

// -------------------------------------------------
// POST /api/kiosk/orders/:id/approve
// Cobra y finaliza un pedido pendiente. El update lleva precondición
// status='pending' para que dos cajeros no lo aprueben dos veces.
// -------------------------------------------------
func ApproveOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body ApproveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if body.PaymentMethod != "cash" && body.PaymentMethod != "qr" {
			return fiber.NewError(fiber.StatusBadRequest, "Método de pago inválido (cash|qr)")
		}

		approvedBy := fmt.Sprintf("Aprobado por %s", auth.CurrentUserLabel(c))

		res := database.DB.Model(&models.Order{}).
			Where("id = ? AND status = ?", id, models.OrderStatusPending).
			Updates(map[string]interface{}{
				"status":         models.OrderStatusCompleted,
				"payment_method": body.PaymentMethod,
				"cashier_name":   approvedBy,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el pedido")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "El pedido ya no está pendiente")
		}

		userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    auth.CurrentUserLabel(c),
			EntityType:  "order",
			EntityID:    uint(id),
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Pedido de kiosco #%d aprobado con %s", id, body.PaymentMethod),
		}); logErr != nil {
			fmt.Printf("No se pudo escribir auditoría: %v\n", logErr)
		}

		var order models.Order
		if err := database.DB.Preload("Items").First(&order, id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pedido aprobado pero no se pudo recargar")
		}
		return c.JSON(order)
	}
}

// -------------------------------------------------
// DELETE /api/kiosk/orders/:id
// Rechaza (elimina) un pedido pendiente que nunca se cobró
// -------------------------------------------------
func RejectOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		// Solo pendientes: un pedido cobrado ya es parte del reporte
		res := database.DB.
			Where("id = ? AND status = ?", id, models.OrderStatusPending).
			Delete(&models.Order{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el pedido")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "El pedido no existe o ya fue cobrado")
		}

		database.DB.Where("order_id = ?", id).Delete(&models.OrderItem{})

		return c.JSON(fiber.Map{"deleted": id})
	}
}
