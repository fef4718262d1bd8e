package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/configs"
	"gympro_backend/internals/constants"
	authModel "gympro_backend/internals/features/auth/model"
	authService "gympro_backend/internals/features/auth/service"
	"gympro_backend/internals/features/gyms/dto"
	helper "gympro_backend/internals/helpers"
)

type GymController struct {
	DB *gorm.DB
}

func NewGymController(db *gorm.DB) *GymController {
	return &GymController{DB: db}
}

var validate = validator.New()

const trialDays = 30

// POST /api/redeem-access-code
// Creates the gym account and its owner admin atomically. The generated
// owner password is returned once and only its hash is stored.
func (ctrl *GymController) RedeemAccessCode(c *fiber.Ctx) error {
	var req dto.RedeemAccessCodeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] redeem body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.AccessCode != configs.MasterAccessCode {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid access code")
	}

	gym := req.GymInfo.ToModel(req.AccessCode)
	trialEnd := time.Now().UTC().AddDate(0, 0, trialDays)
	gym.GymTrialEndDate = &trialEnd
	gym.GymSubscriptionStatus = "trial"

	adminPassword := authService.GeneratePassword(12)
	passwordHash, err := authService.HashPassword(adminPassword)
	if err != nil {
		log.Printf("[ERROR] hash owner password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(gym).Error; err != nil {
			return err
		}
		owner := authModel.GymAdminModel{
			GymAdminGymID:        gym.GymID,
			GymAdminName:         gym.GymOwnerName,
			GymAdminEmail:        gym.GymOwnerEmail,
			GymAdminCardCode:     "ADMIN-" + gym.GymSubdomain,
			GymAdminPasswordHash: passwordHash,
			GymAdminRole:         constants.RoleOwner,
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		log.Printf("[ERROR] create gym account: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Account created successfully", dto.RedeemAccessCodeResponse{
		GymID:         gym.GymID.String(),
		GymName:       gym.GymName,
		Subdomain:     gym.GymSubdomain,
		DashboardURL:  "https://" + gym.GymSubdomain + ".gympro.app",
		Plan:          gym.GymSubscriptionPlan,
		TrialDays:     trialDays,
		AdminPassword: adminPassword,
	})
}
