package kitchen

import (
	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"

	"github.com/gofiber/fiber/v2"
)

type KitchenItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type KitchenOrder struct {
	ID           uint          `json:"id"`
	OrderType    string        `json:"order_type"`
	CustomerName string        `json:"customer_name"`
	CreatedAt    string        `json:"created_at"`
	Items        []KitchenItem `json:"items"`
}

// -------------------------------------------------
// GET /api/kitchen/orders
// Comandas: pedidos cobrados que la cocina aún no marcó como listos,
// los más antiguos primero
// -------------------------------------------------
func ListKitchenOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var pending []models.Order
		if err := database.DB.Preload("Items").
			Where("status = ? AND kitchen_status = ?", models.OrderStatusCompleted, models.KitchenStatusPending).
			Order("created_at asc").
			Find(&pending).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron cargar las comandas")
		}

		var products []models.Product
		if err := database.DB.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los productos")
		}
		nameByID := make(map[uint]string, len(products))
		for _, p := range products {
			nameByID[p.ID] = p.Name
		}

		resp := make([]KitchenOrder, 0, len(pending))
		for _, o := range pending {
			items := make([]KitchenItem, 0, len(o.Items))
			for _, it := range o.Items {
				name := nameByID[it.ProductID]
				if name == "" {
					name = "Producto eliminado"
				}
				items = append(items, KitchenItem{ProductName: name, Quantity: it.Quantity})
			}
			resp = append(resp, KitchenOrder{
				ID:           o.ID,
				OrderType:    string(o.OrderType),
				CustomerName: o.CustomerName,
				CreatedAt:    o.CreatedAt.UTC().Format("15:04"),
				Items:        items,
			})
		}

		return c.JSON(resp)
	}
}

// -------------------------------------------------
// POST /api/kitchen/orders/:id/ready
// -------------------------------------------------
func MarkReadyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		res := database.DB.Model(&models.Order{}).
			Where("id = ? AND kitchen_status = ?", id, models.KitchenStatusPending).
			Update("kitchen_status", models.KitchenStatusReady)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la comanda")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Comanda no encontrada o ya está lista")
		}

		return c.JSON(fiber.Map{"id": id, "kitchen_status": models.KitchenStatusReady})
	}
}
