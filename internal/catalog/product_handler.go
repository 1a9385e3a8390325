package catalog

import (
	"fmt"

	"github.com/helenHardy/HEHA/internal/audit"
	"github.com/helenHardy/HEHA/internal/auth"
	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Active      *bool   `json:"active"`
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Active      bool    `json:"active"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Cost:        p.Cost,
		Category:    p.Category,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Active:      p.Active,
	}
}

func validateProductBody(body *ProductRequest) error {
	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "El nombre del producto es obligatorio")
	}
	if body.Price <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "El precio debe ser mayor a 0")
	}
	if body.Cost < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "El costo no puede ser negativo")
	}
	if body.Category == "" {
		body.Category = "General"
	}
	return nil
}

// -------------------------------------------------
// POST /api/products  (solo admin)
// -------------------------------------------------
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if err := validateProductBody(&body); err != nil {
			return err
		}

		product := models.Product{
			Name:        body.Name,
			Price:       body.Price,
			Cost:        body.Cost,
			Category:    body.Category,
			Description: body.Description,
			ImageURL:    body.ImageURL,
			Active:      true,
		}
		if body.Active != nil {
			product.Active = *body.Active
		}

		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "No se pudo crear el producto (¿nombre duplicado?)")
		}

		InvalidateMenu()

		userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    auth.CurrentUserLabel(c),
			EntityType:  "product",
			EntityID:    product.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Producto creado: %s - Bs. %.2f", product.Name, product.Price),
			After:       toProductResponse(product),
		}); logErr != nil {
			fmt.Printf("No se pudo escribir auditoría: %v\n", logErr)
		}

		return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
	}
}

// -------------------------------------------------
// GET /api/products?category=Hamburguesas&include_inactive=1
// -------------------------------------------------
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{})

		if c.Query("include_inactive") == "" {
			dbq = dbq.Where("active = ?", true)
		}
		if cat := c.Query("category"); cat != "" {
			dbq = dbq.Where("category = ?", cat)
		}

		var products []models.Product
		if err := dbq.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los productos")
		}

		resp := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			resp = append(resp, toProductResponse(p))
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// PUT /api/products/:id  (solo admin)
// -------------------------------------------------
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if err := validateProductBody(&body); err != nil {
			return err
		}

		var product models.Product
		if err := database.DB.First(&product, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}

		before := toProductResponse(product)

		product.Name = body.Name
		product.Price = body.Price
		product.Cost = body.Cost
		product.Category = body.Category
		product.Description = body.Description
		product.ImageURL = body.ImageURL
		if body.Active != nil {
			product.Active = *body.Active
		}

		if err := database.DB.Save(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el producto")
		}

		InvalidateMenu()

		userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    auth.CurrentUserLabel(c),
			EntityType:  "product",
			EntityID:    product.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Producto actualizado: %s", product.Name),
			Before:      before,
			After:       toProductResponse(product),
		}); logErr != nil {
			fmt.Printf("No se pudo escribir auditoría: %v\n", logErr)
		}

		return c.JSON(toProductResponse(product))
	}
}

// -------------------------------------------------
// DELETE /api/products/:id  (solo admin)
// Los items vendidos conservan su product_id; el reporte tolera productos
// eliminados contribuyendo costo 0.
// -------------------------------------------------
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var product models.Product
		if err := database.DB.First(&product, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Producto no encontrado")
		}

		if err := database.DB.Delete(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el producto")
		}

		InvalidateMenu()

		userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    auth.CurrentUserLabel(c),
			EntityType:  "product",
			EntityID:    product.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Producto eliminado: %s", product.Name),
			Before:      toProductResponse(product),
		}); logErr != nil {
			fmt.Printf("No se pudo escribir auditoría: %v\n", logErr)
		}

		return c.JSON(fiber.Map{"deleted": product.ID})
	}
}
