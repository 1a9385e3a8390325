package auth

import (
	"strings"

	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"` // admin | cajero | kiosco
}

type UpdateUserRequest struct {
	Name string          `json:"name"`
	Role models.UserRole `json:"role"`
}

type UserResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

func validRole(r models.UserRole) bool {
	switch r {
	case models.RoleAdmin, models.RoleCajero, models.RoleKiosco:
		return true
	}
	return false
}

// -------------------------------------------------
// POST /api/users  (solo admin)
// -------------------------------------------------
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Name == "" || body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre y email son obligatorios")
		}
		if len(body.Password) < 6 {
			return fiber.NewError(fiber.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres")
		}
		if !validRole(body.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "Rol inválido. Use: admin, cajero, kiosco")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo encriptar la contraseña")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         body.Role,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "No se pudo crear el usuario (¿email duplicado?)")
		}

		return c.Status(fiber.StatusCreated).JSON(UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
	}
}

// -------------------------------------------------
// GET /api/users  (solo admin)
// -------------------------------------------------
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("name asc").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los usuarios")
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
		}
		return c.JSON(resp)
	}
}

// -------------------------------------------------
// PUT /api/users/:id  (solo admin, nombre y rol)
// -------------------------------------------------
func UpdateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body UpdateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El nombre es obligatorio")
		}
		if !validRole(body.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "Rol inválido. Use: admin, cajero, kiosco")
		}

		var user models.User
		if err := database.DB.First(&user, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
		}

		user.Name = body.Name
		user.Role = body.Role
		if err := database.DB.Save(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el usuario")
		}

		return c.JSON(UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
	}
}

// -------------------------------------------------
// DELETE /api/users/:id  (solo admin, no a sí mismo)
// -------------------------------------------------
func DeleteUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		callerID, _ := c.Locals(CtxUserIDKey).(uint)
		if callerID == uint(id) {
			return fiber.NewError(fiber.StatusBadRequest, "No puedes eliminar tu propia cuenta")
		}

		res := database.DB.Delete(&models.User{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el usuario")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
		}

		return c.JSON(fiber.Map{"deleted": id})
	}
}
