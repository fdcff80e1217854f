package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"timetable_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
