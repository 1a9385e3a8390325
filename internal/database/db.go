package database

import (
	"log"

	"github.com/helenHardy/HEHA/internal/config"
	"github.com/helenHardy/HEHA/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	// Migración manual OrderItem.cost_at_sale (ANTES de AutoMigrate).
	// Las filas históricas quedan en 0 y el agregador de reportes las cubre
	// con el costo actual del producto.
	if DB.Migrator().HasTable(&models.OrderItem{}) {
		if !DB.Migrator().HasColumn(&models.OrderItem{}, "cost_at_sale") {
			log.Println("Agregando columna order_items.cost_at_sale...")
			if err := DB.Exec("ALTER TABLE order_items ADD COLUMN cost_at_sale DOUBLE PRECISION NOT NULL DEFAULT 0").Error; err != nil {
				log.Printf("Error agregando cost_at_sale (puede existir ya): %v", err)
			}
		}
	}

	// Migración manual Order.payment_method: pedidos viejos sin método de pago
	// se normalizan a 'pendiente' para que el reporte los clasifique igual.
	if DB.Migrator().HasTable(&models.Order{}) {
		var nullCount int64
		DB.Raw("SELECT COUNT(*) FROM orders WHERE payment_method IS NULL OR payment_method = ''").Scan(&nullCount)
		if nullCount > 0 {
			log.Printf("Normalizando %d pedidos sin payment_method a 'pendiente'...", nullCount)
			DB.Exec("UPDATE orders SET payment_method = 'pendiente' WHERE payment_method IS NULL OR payment_method = ''")
		}
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Expense{},
		&models.CashRegisterSession{},
		&models.CashMove{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("Error en AutoMigrate: %v", err)
	}

	// Índice parcial: a lo sumo una sesión de caja abierta en todo el sistema.
	// Respaldo en BD del chequeo que hace el handler de apertura.
	DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_cash_register_single_open ON cash_register_sessions(status) WHERE status = 'open'")

	log.Println("Conexión a base de datos lista. Migración completada.")
}
