// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "gympro_backend/internals/features/analytics/route"
	attendanceRoute "gympro_backend/internals/features/attendance/route"
	authRoute "gympro_backend/internals/features/auth/route"
	classRoute "gympro_backend/internals/features/classes/route"
	gymRoute "gympro_backend/internals/features/gyms/route"
	notificationRoute "gympro_backend/internals/features/notifications/route"
	paymentRoute "gympro_backend/internals/features/payments/route"
	studentRoute "gympro_backend/internals/features/students/route"
	authMiddleware "gympro_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public endpoints (login, card-scan, signup) and
// the authenticated API behind the JWT middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	// Public: token issuance and account signup only.
	authRoute.AuthRoutes(api, db)
	gymRoute.GymRoutes(api, db)

	// Everything else requires a bearer token; the tenant scope comes from
	// its gym_id claim.
	protected := api.Group("/", authMiddleware.AuthMiddleware())
	studentRoute.StudentRoutes(protected, db)
	classRoute.ClassRoutes(protected, db)
	attendanceRoute.AttendanceRoutes(protected, db)
	paymentRoute.PaymentRoutes(protected, db)
	analyticsRoute.AnalyticsRoutes(protected, db)
	notificationRoute.NotificationRoutes(protected, db)
}
