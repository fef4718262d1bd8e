package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/gyms/controller"
	"gympro_backend/internals/middlewares"
)

func GymRoutes(api fiber.Router, db *gorm.DB) {
	gymCtrl := controller.NewGymController(db)

	api.Post("/redeem-access-code", middlewares.SignupRateLimiter(), gymCtrl.RedeemAccessCode)
}
