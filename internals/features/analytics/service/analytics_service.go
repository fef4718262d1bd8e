package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gympro_backend/internals/constants"
	"gympro_backend/internals/features/analytics/dto"
)

// AnalyticsService is stateless and read-only: every number is computed
// from the live tables at request time.
type AnalyticsService struct{}

func NewAnalyticsService() *AnalyticsService { return &AnalyticsService{} }

func (s *AnalyticsService) Dashboard(db *gorm.DB, gymID uuid.UUID, now time.Time) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{}

	if err := db.Raw(
		`SELECT COUNT(*) FROM students WHERE student_gym_id = ?`, gymID,
	).Scan(&resp.TotalStudents).Error; err != nil {
		return nil, err
	}

	// Revenue for the current calendar month.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := db.Raw(
		`SELECT COALESCE(SUM(payment_amount), 0)
		   FROM payments
		  WHERE payment_gym_id = ? AND payment_created_at >= ?`,
		gymID, monthStart,
	).Scan(&resp.MonthlyRevenue).Error; err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := db.Raw(
		`SELECT COUNT(*)
		   FROM attendance_logs
		  WHERE attendance_gym_id = ? AND attendance_check_in_time >= ?`,
		gymID, dayStart,
	).Scan(&resp.CheckInsToday).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(
		`SELECT COUNT(DISTINCT attendance_student_id)
		   FROM attendance_logs
		  WHERE attendance_gym_id = ?
		    AND attendance_student_id IS NOT NULL
		    AND attendance_check_in_time >= ?`,
		gymID, now.AddDate(0, 0, -7),
	).Scan(&resp.ActiveStudents7d).Error; err != nil {
		return nil, err
	}

	// Monday=0, matching the stored day_of_week.
	dayOfWeek := (int(now.Weekday()) + 6) % 7
	if err := db.Raw(
		`SELECT COUNT(*) FROM schedules WHERE schedule_gym_id = ? AND schedule_day_of_week = ?`,
		gymID, dayOfWeek,
	).Scan(&resp.ClassesToday).Error; err != nil {
		return nil, err
	}

	var cardStats struct {
		Total int64
		Card  int64
	}
	if err := db.Raw(
		`SELECT COUNT(*) AS total,
		        COUNT(*) FILTER (WHERE attendance_card_number <> '') AS card
		   FROM attendance_logs
		  WHERE attendance_gym_id = ?`,
		gymID,
	).Scan(&cardStats).Error; err != nil {
		return nil, err
	}
	if cardStats.Total > 0 {
		resp.CardUsageRate = int(cardStats.Card * 100 / cardStats.Total)
	}

	belts := []dto.BeltCount{}
	if err := db.Raw(
		`SELECT student_belt_level AS belt_level, COUNT(*) AS count
		   FROM students
		  WHERE student_gym_id = ?
		  GROUP BY student_belt_level`,
		gymID,
	).Scan(&belts).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(belts, func(i, j int) bool {
		return constants.BeltOrder(belts[i].BeltLevel) < constants.BeltOrder(belts[j].BeltLevel)
	})
	resp.BeltDistribution = belts

	popular := []dto.PopularClass{}
	if err := db.Raw(
		`SELECT attendance_class_name AS class_name, COUNT(*) AS check_ins
		   FROM attendance_logs
		  WHERE attendance_gym_id = ? AND attendance_check_in_time >= ?
		  GROUP BY attendance_class_name
		  ORDER BY check_ins DESC
		  LIMIT 10`,
		gymID, now.AddDate(0, 0, -30),
	).Scan(&popular).Error; err != nil {
		return nil, err
	}
	resp.PopularClasses = popular

	return resp, nil
}

type studentAttendanceRow struct {
	StudentID      uuid.UUID
	Name           string
	Email          string
	Phone          string
	BeltLevel      string
	MemberID       string
	LastAttendance *time.Time
	TotalCheckIns  int64
}

// AtRiskStudents lists every student in the medium or high bucket, the
// longest-lapsed first (never-attended before everyone else).
func (s *AnalyticsService) AtRiskStudents(db *gorm.DB, gymID uuid.UUID, now time.Time) ([]dto.AtRiskStudent, error) {
	rows := []studentAttendanceRow{}
	err := db.Raw(
		`SELECT s.student_id        AS student_id,
		        s.student_name      AS name,
		        s.student_email     AS email,
		        s.student_phone     AS phone,
		        s.student_belt_level AS belt_level,
		        s.student_member_id AS member_id,
		        MAX(al.attendance_check_in_time) AS last_attendance,
		        COUNT(al.attendance_id)          AS total_check_ins
		   FROM students s
		   LEFT JOIN attendance_logs al
		     ON al.attendance_student_id = s.student_id
		    AND al.attendance_gym_id = s.student_gym_id
		  WHERE s.student_gym_id = ?
		  GROUP BY s.student_id, s.student_name, s.student_email, s.student_phone,
		           s.student_belt_level, s.student_member_id
		  ORDER BY MAX(al.attendance_check_in_time) ASC NULLS FIRST`,
		gymID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	atRisk := []dto.AtRiskStudent{}
	for _, row := range rows {
		level := RiskLevel(row.LastAttendance, now)
		if level == RiskNone {
			continue
		}
		entry := dto.AtRiskStudent{
			StudentID:     row.StudentID,
			Name:          row.Name,
			Email:         row.Email,
			Phone:         row.Phone,
			BeltLevel:     row.BeltLevel,
			MemberID:      row.MemberID,
			RiskLevel:     level,
			TotalCheckIns: row.TotalCheckIns,
		}
		if row.LastAttendance != nil {
			formatted := row.LastAttendance.Format(time.RFC3339)
			entry.LastAttendance = &formatted
		}
		atRisk = append(atRisk, entry)
	}
	return atRisk, nil
}

func (s *AnalyticsService) SystemStatus(db *gorm.DB, gymID uuid.UUID) (*dto.SystemStatusResponse, error) {
	resp := &dto.SystemStatusResponse{Status: "healthy", DatabaseStatus: "connected"}

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM students WHERE student_gym_id = ?`, &resp.TotalStudents},
		{`SELECT COUNT(*) FROM classes WHERE class_gym_id = ?`, &resp.TotalClasses},
		{`SELECT COUNT(*) FROM attendance_logs WHERE attendance_gym_id = ?`, &resp.TotalCheckIns},
		{`SELECT COUNT(*) FROM payments WHERE payment_gym_id = ?`, &resp.TotalPayments},
		{`SELECT COUNT(*) FROM notifications WHERE notification_gym_id = ?`, &resp.TotalNotifications},
	}
	for _, q := range counts {
		if err := db.Raw(q.query, gymID).Scan(q.dest).Error; err != nil {
			return nil, err
		}
	}
	return resp, nil
}
