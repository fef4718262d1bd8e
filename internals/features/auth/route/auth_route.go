package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/auth/controller"
	"gympro_backend/internals/middlewares"
)

// AuthRoutes are the only endpoints reachable without a bearer token
// (aside from gym signup and /health).
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	api.Post("/card-scan", middlewares.LoginRateLimiter(), authCtrl.CardScan)
}
