package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceLogModel is append-only. There are no update or delete
// endpoints; rows are written once at check-in and only ever read.
type AttendanceLogModel struct {
	AttendanceID    uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceGymID uuid.UUID `gorm:"column:attendance_gym_id;type:uuid;not null;index:idx_attendance_gym_id" json:"attendance_gym_id"`

	AttendanceStudentID   *uuid.UUID `gorm:"column:attendance_student_id;type:uuid;index:idx_attendance_student_id" json:"attendance_student_id,omitempty"`
	AttendanceStudentName string     `gorm:"column:attendance_student_name;type:varchar(255);not null" json:"attendance_student_name"`
	AttendanceMemberID    string     `gorm:"column:attendance_member_id;type:varchar(20)" json:"attendance_member_id"`
	AttendanceCardNumber  string     `gorm:"column:attendance_card_number;type:varchar(20)" json:"attendance_card_number"`

	AttendanceClassID   *uuid.UUID `gorm:"column:attendance_class_id;type:uuid" json:"attendance_class_id,omitempty"`
	AttendanceClassName string     `gorm:"column:attendance_class_name;type:varchar(255);not null" json:"attendance_class_name"`

	AttendanceCheckInTime time.Time `gorm:"column:attendance_check_in_time;type:timestamptz;autoCreateTime;index:idx_attendance_check_in_time" json:"attendance_check_in_time"`
	AttendanceNotes       string    `gorm:"column:attendance_notes;type:text" json:"attendance_notes"`
}

func (AttendanceLogModel) TableName() string {
	return "attendance_logs"
}
