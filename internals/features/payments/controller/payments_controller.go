package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/payments/dto"
	"gympro_backend/internals/features/payments/model"
	studentModel "gympro_backend/internals/features/students/model"
	helper "gympro_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

// POST /api/payments
func (ctrl *PaymentController) RecordPayment(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] payment body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Amount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "amount must be positive")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_gym_id = ?", req.StudentID, gymID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up student")
	}

	payment := req.ToModel(gymID)
	if err := ctrl.DB.Create(payment).Error; err != nil {
		log.Printf("[ERROR] record payment: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Payment recorded successfully", dto.ToPaymentResponse(payment))
}

// GET /api/payments — full ledger for the gym, newest first.
func (ctrl *PaymentController) GetPayments(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.
		Where("payment_gym_id = ?", gymID).
		Order("payment_created_at DESC").
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payments")
	}

	return helper.JsonOK(c, "Payments loaded", dto.ToPaymentResponseList(payments))
}
