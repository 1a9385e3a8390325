package main

import (
	"log"
	"strings"

	"github.com/helenHardy/HEHA/internal/audit"
	"github.com/helenHardy/HEHA/internal/auth"
	"github.com/helenHardy/HEHA/internal/cashregister"
	"github.com/helenHardy/HEHA/internal/catalog"
	"github.com/helenHardy/HEHA/internal/config"
	"github.com/helenHardy/HEHA/internal/dashboard"
	"github.com/helenHardy/HEHA/internal/database"
	"github.com/helenHardy/HEHA/internal/expense"
	"github.com/helenHardy/HEHA/internal/kiosk"
	"github.com/helenHardy/HEHA/internal/kitchen"
	"github.com/helenHardy/HEHA/internal/models"
	"github.com/helenHardy/HEHA/internal/orders"
	"github.com/helenHardy/HEHA/internal/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	// CORS: la lista viene separada por comas en la variable de entorno
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Auth público
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protegido
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Guardias de rol por ruta. Los tres roles comparten el prefijo /api, por
	// eso el guardia va en la ruta y no en un grupo.
	soloAdmin := auth.RequireRole(models.RoleAdmin)
	personal := auth.RequireRole(models.RoleAdmin, models.RoleCajero)
	soloKiosco := auth.RequireRole(models.RoleKiosco)

	// Usuarios (solo admin)
	protected.Post("/users", soloAdmin, auth.CreateUserHandler())
	protected.Get("/users", soloAdmin, auth.ListUsersHandler())
	protected.Put("/users/:id", soloAdmin, auth.UpdateUserHandler())
	protected.Delete("/users/:id", soloAdmin, auth.DeleteUserHandler())

	// Catálogo
	protected.Get("/products", personal, catalog.ListProductsHandler())
	protected.Post("/products", soloAdmin, catalog.CreateProductHandler())
	protected.Put("/products/:id", soloAdmin, catalog.UpdateProductHandler())
	protected.Delete("/products/:id", soloAdmin, catalog.DeleteProductHandler())
	protected.Get("/categories", personal, catalog.ListCategoriesHandler())
	protected.Post("/categories", soloAdmin, catalog.CreateCategoryHandler())
	protected.Delete("/categories/:id", soloAdmin, catalog.DeleteCategoryHandler())

	// Pedidos
	protected.Post("/orders", personal, orders.CreateOrderHandler())
	protected.Get("/orders", personal, orders.ListOrdersHandler(cfg))
	protected.Get("/orders/:id", personal, orders.GetOrderHandler())

	// Cocina
	protected.Get("/kitchen/orders", personal, kitchen.ListKitchenOrdersHandler())
	protected.Post("/kitchen/orders/:id/ready", personal, kitchen.MarkReadyHandler())

	// Caja registradora
	protected.Post("/cash-register/open", personal, cashregister.OpenSessionHandler())
	protected.Get("/cash-register/current", personal, cashregister.CurrentSessionHandler())
	protected.Post("/cash-register/moves", personal, cashregister.CreateCashMoveHandler())
	protected.Get("/cash-register/moves", personal, cashregister.ListCashMovesHandler())
	protected.Post("/cash-register/close", personal, cashregister.CloseSessionHandler())

	// Gastos
	protected.Post("/expenses", personal, expense.CreateExpenseHandler())
	protected.Get("/expenses", personal, expense.ListExpensesHandler(cfg))
	protected.Delete("/expenses/:id", soloAdmin, expense.DeleteExpenseHandler())

	// Reportes
	protected.Get("/reports", personal, reports.GetReportHandler(cfg))

	// Panel
	protected.Get("/dashboard/summary", personal, dashboard.SummaryHandler(cfg))
	protected.Get("/dashboard/sales-chart", personal, dashboard.SalesChartHandler(cfg))

	// Auditoría (solo admin)
	protected.Get("/audit-logs", soloAdmin, audit.ListAuditLogsHandler())

	// Kiosco de autoservicio (usuario dedicado con rol kiosco)
	protected.Get("/kiosk/menu", soloKiosco, kiosk.MenuHandler())
	protected.Post("/kiosk/orders", soloKiosco, kiosk.PlaceOrderHandler())

	// Aprobación de pedidos del kiosco (lado cajero)
	protected.Get("/kiosk/orders/pending", personal, kiosk.ListPendingHandler())
	protected.Get("/kiosk/orders/pending-count", personal, kiosk.PendingCountHandler())
	protected.Post("/kiosk/orders/:id/approve", personal, kiosk.ApproveOrderHandler())
	protected.Delete("/kiosk/orders/:id", personal, kiosk.RejectOrderHandler())

	log.Println("Servidor escuchando en el puerto", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
