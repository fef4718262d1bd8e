package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	notificationCtrl := controller.NewNotificationController(db)

	notifications := api.Group("/notifications")
	notifications.Get("/", notificationCtrl.GetNotifications)
	notifications.Post("/", notificationCtrl.SendNotification)
}
