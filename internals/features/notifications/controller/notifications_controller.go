package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/notifications/dto"
	"gympro_backend/internals/features/notifications/model"
	helper "gympro_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

var validate = validator.New()

// POST /api/notifications
// Records the intent and logs it. No transport is attached; delivery is a
// future concern.
func (ctrl *NotificationController) SendNotification(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.NotificationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] notification body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	adminID, err := helper.GetAdminIDFromToken(c)
	if err != nil {
		return err
	}

	notification := req.ToModel(gymID, adminID, helper.GetAdminNameFromToken(c))
	if err := ctrl.DB.Create(notification).Error; err != nil {
		log.Printf("[ERROR] record notification: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record notification")
	}

	log.Printf("[INFO] notification logged gym=%s type=%s recipients=%s(%d) subject=%q",
		gymID, notification.NotificationType, notification.NotificationRecipientType,
		notification.NotificationRecipientCount, notification.NotificationSubject)

	return helper.JsonCreated(c, "Notification recorded", dto.ToNotificationResponse(notification))
}

// GET /api/notifications — latest 100 for the gym.
func (ctrl *NotificationController) GetNotifications(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var notifications []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_gym_id = ?", gymID).
		Order("notification_sent_at DESC").
		Limit(100).
		Find(&notifications).Error; err != nil {
		log.Printf("[ERROR] list notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notifications")
	}

	return helper.JsonOK(c, "Notifications loaded", dto.ToNotificationResponseList(notifications))
}
