package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/payments/controller"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	paymentCtrl := controller.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Get("/", paymentCtrl.GetPayments)
	payments.Post("/", paymentCtrl.RecordPayment)
}
