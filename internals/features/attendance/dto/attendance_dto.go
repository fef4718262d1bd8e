package dto

import (
	"time"

	"github.com/google/uuid"

	"gympro_backend/internals/features/attendance/model"
)

// CheckInRequest identifies the student by id, card number or plain name,
// in that order of preference. class_id pins a specific class; otherwise
// the current slot is resolved from the schedule.
type CheckInRequest struct {
	StudentID   *uuid.UUID `json:"student_id" validate:"omitempty"`
	CardNumber  string     `json:"card_number" validate:"omitempty,max=20"`
	StudentName string     `json:"student_name" validate:"omitempty,max=255"`
	ClassID     *uuid.UUID `json:"class_id" validate:"omitempty"`
	Notes       string     `json:"notes" validate:"omitempty,max=500"`
}

type CheckInResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	StudentName  string    `json:"student_name"`
	MemberID     string    `json:"member_id"`
	CardNumber   string    `json:"card_number"`
	ClassName    string    `json:"class_name"`
	Instructor   string    `json:"instructor"`
	CheckInTime  string    `json:"check_in_time"`
}

type AttendanceResponse struct {
	AttendanceID uuid.UUID  `json:"attendance_id"`
	StudentID    *uuid.UUID `json:"student_id,omitempty"`
	StudentName  string     `json:"student_name"`
	MemberID     string     `json:"member_id"`
	CardNumber   string     `json:"card_number"`
	ClassName    string     `json:"class_name"`
	CheckInTime  string     `json:"check_in_time"`
	Notes        string     `json:"notes,omitempty"`
}

type CurrentClassResponse struct {
	ClassName  string `json:"class_name"`
	Instructor string `json:"instructor"`
}

func ToAttendanceResponse(m *model.AttendanceLogModel) *AttendanceResponse {
	return &AttendanceResponse{
		AttendanceID: m.AttendanceID,
		StudentID:    m.AttendanceStudentID,
		StudentName:  m.AttendanceStudentName,
		MemberID:     m.AttendanceMemberID,
		CardNumber:   m.AttendanceCardNumber,
		ClassName:    m.AttendanceClassName,
		CheckInTime:  m.AttendanceCheckInTime.Format(time.RFC3339),
		Notes:        m.AttendanceNotes,
	}
}

func ToAttendanceResponseList(models []model.AttendanceLogModel) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToAttendanceResponse(&models[i]))
	}
	return result
}
