package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/analytics/dto"
	"gympro_backend/internals/features/analytics/service"
	helper "gympro_backend/internals/helpers"
)

type AnalyticsController struct {
	DB      *gorm.DB
	Service *service.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db, Service: service.NewAnalyticsService()}
}

// GET /api/analytics
func (ctrl *AnalyticsController) GetDashboard(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	resp, err := ctrl.Service.Dashboard(ctrl.DB, gymID, time.Now())
	if err != nil {
		log.Printf("[ERROR] analytics dashboard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute analytics")
	}
	return helper.JsonOK(c, "Analytics loaded", resp)
}

// GET /api/risk-analysis
func (ctrl *AnalyticsController) GetRiskAnalysis(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	atRisk, err := ctrl.Service.AtRiskStudents(ctrl.DB, gymID, time.Now())
	if err != nil {
		log.Printf("[ERROR] risk analysis: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute risk analysis")
	}
	return helper.JsonOK(c, "Risk analysis loaded", dto.RiskAnalysisResponse{AtRiskStudents: atRisk})
}

// GET /api/system-status
func (ctrl *AnalyticsController) GetSystemStatus(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	resp, err := ctrl.Service.SystemStatus(ctrl.DB, gymID)
	if err != nil {
		log.Printf("[ERROR] system status: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load system status")
	}
	return helper.JsonOK(c, "System status", resp)
}
