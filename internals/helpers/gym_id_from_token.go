package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// uuidFromLocals reads a claim stored by the auth middleware.
func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid "+key+" in token")
	}
	return id, nil
}

// GetGymIDFromToken returns the tenant scope of the authenticated request.
// Every query must be filtered by this value, never by a gym id in the body.
func GetGymIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "gym_id")
}

func GetAdminIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "admin_id")
}

func GetAdminNameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("admin_name").(string); ok {
		return v
	}
	return ""
}
