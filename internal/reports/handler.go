package reports

import (
	"errors"
	"log"
	"time"

	"github.com/helenHardy/HEHA/internal/config"

	"github.com/gofiber/fiber/v2"
)

// -------------------------------------------------
// GET /api/reports?date=2025-08-14  (o date=2025-08, o sin date = hoy)
// -------------------------------------------------
func GetReportHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rng, err := ResolveRange(c.Query("date"), time.Now(), cfg.BusinessDayOffsetHours)
		if err != nil {
			if errors.Is(err, ErrInvalidRange) {
				return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida, use YYYY-MM-DD o YYYY-MM")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo resolver el rango de fechas")
		}

		topN := c.QueryInt("top", 10)
		if topN <= 0 || topN > 50 {
			topN = 10
		}

		report, err := Compute(rng, topN)
		if err != nil {
			log.Printf("Error generando reporte %s: %v", rng.Label, err)
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el reporte")
		}

		return c.JSON(report)
	}
}
