package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/configs"
	"gympro_backend/internals/features/auth/dto"
	authModel "gympro_backend/internals/features/auth/model"
	gymModel "gympro_backend/internals/features/gyms/model"
)

/* ==========================
   Login flow
========================== */

// Login authenticates a gym admin by card code, with an optional password.
// A card code without a password is the card-scan kiosk path and only works
// for admins that actually have a card code registered.
func Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var admin authModel.GymAdminModel
	err := db.Where("gym_admin_card_code = ?", req.CardCode).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	now := time.Now().UTC()
	if IsLocked(admin.GymAdminLockedUntil, now) {
		return nil, fiber.NewError(fiber.StatusLocked,
			"Account locked after too many failed attempts. Try again later.")
	}

	if req.Password != "" && !CheckPassword(admin.GymAdminPasswordHash, req.Password) {
		registerFailure(db, &admin, now)
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	// Success: clear the failure counter.
	if admin.GymAdminFailedLogins != 0 || admin.GymAdminLockedUntil != nil {
		if err := db.Model(&admin).Updates(map[string]interface{}{
			"gym_admin_failed_logins": 0,
			"gym_admin_locked_until":  nil,
		}).Error; err != nil {
			log.Printf("[ERROR] reset lockout state: %v", err)
		}
	}

	var gym gymModel.GymModel
	if err := db.Where("gym_id = ?", admin.GymAdminGymID).First(&gym).Error; err != nil {
		log.Printf("[ERROR] gym lookup for admin %s: %v", admin.GymAdminID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	token, err := SignAccessToken(configs.JWTSecret, &admin, gym.GymName, AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		AdminInfo: dto.AdminInfo{
			Name:    admin.GymAdminName,
			Role:    admin.GymAdminRole,
			GymName: gym.GymName,
			Plan:    gym.GymSubscriptionPlan,
		},
	}, nil
}

func registerFailure(db *gorm.DB, admin *authModel.GymAdminModel, now time.Time) {
	failed, lockedUntil := NextLockoutState(admin.GymAdminFailedLogins, now)
	if err := db.Model(admin).Updates(map[string]interface{}{
		"gym_admin_failed_logins": failed,
		"gym_admin_locked_until":  lockedUntil,
	}).Error; err != nil {
		log.Printf("[ERROR] update lockout state: %v", err)
	}
}
