package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	authModel "gympro_backend/internals/features/auth/model"
)

const AccessTokenTTL = 24 * time.Hour

// SignAccessToken issues the HS256 bearer token carried by every
// authenticated request. gym_id in the claims is the tenant scope.
func SignAccessToken(secret string, admin *authModel.GymAdminModel, gymName string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"admin_id": admin.GymAdminID.String(),
		"gym_id":   admin.GymAdminGymID.String(),
		"role":     admin.GymAdminRole,
		"name":     admin.GymAdminName,
		"gym_name": gymName,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
