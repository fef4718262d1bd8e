package service

import "time"

// Risk buckets for lapsed students.
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskNone   = ""
)

const (
	highRiskDays   = 14
	mediumRiskDays = 7
)

// RiskLevel classifies a student by days since their last attendance.
// Never attended or >= 14 days ago is high risk, 7-13 days is medium,
// anything more recent is not flagged.
func RiskLevel(lastAttendance *time.Time, now time.Time) string {
	if lastAttendance == nil {
		return RiskHigh
	}
	days := int(now.Sub(*lastAttendance).Hours() / 24)
	switch {
	case days >= highRiskDays:
		return RiskHigh
	case days >= mediumRiskDays:
		return RiskMedium
	default:
		return RiskNone
	}
}
