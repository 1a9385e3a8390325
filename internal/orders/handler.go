package orders

import (
	"errors"
	"regexp"
	"time"

	"github.com/helenHardy/HEHA/internal/auth"
	"github.com/helenHardy/HEHA/internal/config"
	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"
	"github.com/helenHardy/HEHA/internal/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	OrderType        models.OrderType   `json:"order_type"` // mesa | llevar | whatsapp
	PaymentMethod    string             `json:"payment_method"`
	CustomerName     string             `json:"customer_name"`
	CustomerPhone    string             `json:"customer_phone"`
	DeliveryLocation string             `json:"delivery_location"`
	AdvanceAmount    float64            `json:"advance_amount"`
	Items            []OrderItemRequest `json:"items"`
}

type OrderItemResponse struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"price_at_sale"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderResponse struct {
	ID               uint                `json:"id"`
	ClaimCode        string              `json:"claim_code,omitempty"`
	TotalAmount      float64             `json:"total_amount"`
	OrderType        models.OrderType    `json:"order_type"`
	Status           models.OrderStatus  `json:"status"`
	PaymentMethod    string              `json:"payment_method"`
	CustomerName     string              `json:"customer_name"`
	CustomerPhone    string              `json:"customer_phone"`
	DeliveryLocation string              `json:"delivery_location"`
	AdvanceAmount    float64             `json:"advance_amount"`
	CashierName      string              `json:"cashier_name"`
	CreatedAt        string              `json:"created_at"`
	Items            []OrderItemResponse `json:"items"`
}

// Teléfonos bolivianos: 8 dígitos celular, 7 fijo
var phoneRe = regexp.MustCompile(`^\d{7,8}$`)

func validOrderType(t models.OrderType) bool {
	switch t {
	case models.OrderTypeMesa, models.OrderTypeLlevar, models.OrderTypeWhatsApp:
		return true
	}
	return false
}

func validPaymentMethod(m string) bool {
	switch m {
	case "cash", "qr", "pendiente":
		return true
	}
	return false
}

// BuildOrder valida el carrito, congela precio y costo por item y calcula el
// total del lado del servidor (total = Σ precio×cantidad, el invariante que
// el agregador de reportes asume). No persiste nada.
func BuildOrder(body *CreateOrderRequest, cashierName string) (*models.Order, error) {
	if len(body.Items) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Carrito vacío")
	}
	if !validOrderType(body.OrderType) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tipo de pedido inválido (mesa|llevar|whatsapp)")
	}
	if !validPaymentMethod(body.PaymentMethod) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Método de pago inválido (cash|qr|pendiente)")
	}
	if body.OrderType == models.OrderTypeWhatsApp && !phoneRe.MatchString(body.CustomerPhone) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "El teléfono debe tener 7 u 8 dígitos numéricos válidos para Bolivia")
	}
	if body.AdvanceAmount < 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "El adelanto no puede ser negativo")
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(body.Items))

	for _, it := range body.Items {
		if it.Quantity <= 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "La cantidad de cada item debe ser mayor a 0")
		}

		var product models.Product
		if err := database.DB.First(&product, it.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Uno de los productos del carrito no existe")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudo verificar el producto")
		}
		if !product.Active {
			return nil, fiber.NewError(fiber.StatusBadRequest, "El producto '"+product.Name+"' no está disponible")
		}

		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			Quantity:    it.Quantity,
			PriceAtSale: product.Price,
			CostAtSale:  product.Cost,
		})
		total = total.Add(decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	totalF, _ := total.Round(2).Float64()

	return &models.Order{
		TotalAmount:      totalF,
		OrderType:        body.OrderType,
		Status:           models.OrderStatusCompleted,
		KitchenStatus:    models.KitchenStatusPending,
		PaymentMethod:    body.PaymentMethod,
		CustomerName:     body.CustomerName,
		CustomerPhone:    body.CustomerPhone,
		DeliveryLocation: body.DeliveryLocation,
		AdvanceAmount:    body.AdvanceAmount,
		CashierName:      cashierName,
		Items:            items,
	}, nil
}

// -------------------------------------------------
// POST /api/orders
// Checkout del terminal: pedido + items en una sola transacción
// -------------------------------------------------
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		order, err := BuildOrder(&body, auth.CurrentUserLabel(c))
		if err != nil {
			return err
		}

		// Create con asociación inserta pedido e items en una transacción
		if err := database.DB.Create(order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el pedido")
		}

		resp, err := loadOrderResponse(order.ID)
		if err != nil {
			return err
		}

		result := fiber.Map{
			"order":   resp,
			"receipt": ReceiptText(order, resp.Items),
		}
		if order.OrderType == models.OrderTypeWhatsApp {
			result["whatsapp_message"] = WhatsAppMessage(order, resp.Items)
		}

		return c.Status(fiber.StatusCreated).JSON(result)
	}
}

// productNames: nombres de producto para el detalle; un producto eliminado
// deja el nombre vacío, no rompe el listado.
func productNames() (map[uint]string, error) {
	var products []models.Product
	if err := database.DB.Find(&products).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "No se pudieron obtener los productos")
	}
	nameByID := make(map[uint]string, len(products))
	for _, p := range products {
		nameByID[p.ID] = p.Name
	}
	return nameByID, nil
}

func loadOrderResponse(orderID uint) (*OrderResponse, error) {
	var order models.Order
	if err := database.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Pedido no encontrado")
	}

	nameByID, err := productNames()
	if err != nil {
		return nil, err
	}
	return toOrderResponse(&order, nameByID), nil
}

func toOrderResponse(order *models.Order, nameByID map[uint]string) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		sub := decimal.NewFromFloat(it.PriceAtSale).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subF, _ := sub.Round(2).Float64()
		items = append(items, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: nameByID[it.ProductID],
			Quantity:    it.Quantity,
			PriceAtSale: it.PriceAtSale,
			Subtotal:    subF,
		})
	}

	return &OrderResponse{
		ID:               order.ID,
		ClaimCode:        order.ClaimCode,
		TotalAmount:      order.TotalAmount,
		OrderType:        order.OrderType,
		Status:           order.Status,
		PaymentMethod:    order.PaymentMethod,
		CustomerName:     order.CustomerName,
		CustomerPhone:    order.CustomerPhone,
		DeliveryLocation: order.DeliveryLocation,
		AdvanceAmount:    order.AdvanceAmount,
		CashierName:      order.CashierName,
		CreatedAt:        order.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		Items:            items,
	}
}

// -------------------------------------------------
// GET /api/orders?date=2025-08-14&type=mesa&status=completed
// -------------------------------------------------
func ListOrdersHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rng, err := reports.ResolveRange(c.Query("date"), time.Now(), cfg.BusinessDayOffsetHours)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida, use YYYY-MM-DD o YYYY-MM")
		}

		dbq := database.DB.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", rng.Start, rng.End)

		if t := c.Query("type"); t != "" {
			dbq = dbq.Where("order_type = ?", t)
		}
		if s := c.Query("status"); s != "" {
			dbq = dbq.Where("status = ?", s)
		}

		var orderRows []models.Order
		if err := dbq.Preload("Items").Order("created_at desc").Find(&orderRows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los pedidos")
		}

		nameByID, err := productNames()
		if err != nil {
			return err
		}

		resp := make([]*OrderResponse, 0, len(orderRows))
		for i := range orderRows {
			resp = append(resp, toOrderResponse(&orderRows[i], nameByID))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// GET /api/orders/:id
// -------------------------------------------------
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		resp, err := loadOrderResponse(uint(id))
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}
}
