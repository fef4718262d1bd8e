package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// mapPGError turns postgres constraint violations into client statuses so a
// duplicate member id or card number surfaces as 409, not 500.
func mapPGError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23503":
			return fiber.StatusBadRequest, "Referenced record not found (FK violation)."
		case "23505":
			return fiber.StatusConflict, "Duplicate value (unique violation)."
		default:
			return fiber.StatusInternalServerError, pgxErr.Message
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23503":
			return fiber.StatusBadRequest, "Referenced record not found (FK violation)."
		case "23505":
			return fiber.StatusConflict, "Duplicate value (unique violation)."
		default:
			return fiber.StatusInternalServerError, pqErr.Error()
		}
	}
	return fiber.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return JsonError(c, code, msg)
}

func IsUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
