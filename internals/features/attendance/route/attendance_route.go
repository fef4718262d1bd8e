package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	attendanceCtrl := controller.NewAttendanceController(db)

	api.Post("/checkin", attendanceCtrl.CheckIn)
	api.Get("/attendance", attendanceCtrl.GetAttendance)
	api.Get("/current-class", attendanceCtrl.GetCurrentClass)
}
