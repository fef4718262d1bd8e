package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "gympro_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Auth and the stricter
// limiters are attached per route group in internals/route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
