package catalog

import (
	"strings"

	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// -------------------------------------------------
// POST /api/categories  (solo admin)
// -------------------------------------------------
func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El nombre de la categoría es obligatorio")
		}

		category := models.Category{Name: body.Name}
		if err := database.DB.Create(&category).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "No se pudo crear la categoría (¿nombre duplicado?)")
		}

		InvalidateMenu()

		return c.Status(fiber.StatusCreated).JSON(CategoryResponse{ID: category.ID, Name: category.Name})
	}
}

// -------------------------------------------------
// GET /api/categories
// -------------------------------------------------
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categories []models.Category
		if err := database.DB.Order("name asc").Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las categorías")
		}

		resp := make([]CategoryResponse, 0, len(categories))
		for _, cat := range categories {
			resp = append(resp, CategoryResponse{ID: cat.ID, Name: cat.Name})
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// DELETE /api/categories/:id  (solo admin)
// Los productos conservan el nombre de categoría denormalizado.
// -------------------------------------------------
func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		res := database.DB.Delete(&models.Category{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la categoría")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Categoría no encontrada")
		}

		InvalidateMenu()

		return c.JSON(fiber.Map{"deleted": id})
	}
}
