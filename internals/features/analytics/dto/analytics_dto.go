package dto

import "github.com/google/uuid"

type BeltCount struct {
	BeltLevel string `json:"belt_level"`
	Count     int64  `json:"count"`
}

type PopularClass struct {
	ClassName string `json:"class_name"`
	CheckIns  int64  `json:"check_ins"`
}

type DashboardResponse struct {
	TotalStudents    int64          `json:"total_students"`
	MonthlyRevenue   float64        `json:"monthly_revenue"`
	CheckInsToday    int64          `json:"check_ins_today"`
	ActiveStudents7d int64          `json:"active_students_7d"`
	ClassesToday     int64          `json:"classes_today"`
	CardUsageRate    int            `json:"card_usage_rate"`
	BeltDistribution []BeltCount    `json:"belt_distribution"`
	PopularClasses   []PopularClass `json:"popular_classes"`
}

type AtRiskStudent struct {
	StudentID      uuid.UUID `json:"student_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	BeltLevel      string    `json:"belt_level"`
	MemberID       string    `json:"member_id"`
	RiskLevel      string    `json:"risk_level"`
	LastAttendance *string   `json:"last_attendance,omitempty"`
	TotalCheckIns  int64     `json:"total_check_ins"`
}

type RiskAnalysisResponse struct {
	AtRiskStudents []AtRiskStudent `json:"at_risk_students"`
}

type SystemStatusResponse struct {
	Status             string `json:"status"`
	DatabaseStatus     string `json:"database_status"`
	TotalStudents      int64  `json:"total_students"`
	TotalClasses       int64  `json:"total_classes"`
	TotalCheckIns      int64  `json:"total_check_ins"`
	TotalPayments      int64  `json:"total_payments"`
	TotalNotifications int64  `json:"total_notifications"`
}
