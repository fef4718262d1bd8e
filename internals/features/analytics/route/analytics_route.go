package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/analytics/controller"
)

func AnalyticsRoutes(api fiber.Router, db *gorm.DB) {
	analyticsCtrl := controller.NewAnalyticsController(db)

	api.Get("/analytics", analyticsCtrl.GetDashboard)
	api.Get("/risk-analysis", analyticsCtrl.GetRiskAnalysis)
	api.Get("/system-status", analyticsCtrl.GetSystemStatus)
}
