package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gympro_backend/internals/features/students/model"
)

type StudentCreateRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=50"`
	BeltLevel string `json:"belt_level" validate:"omitempty,oneof=White Blue Purple Brown Black"`
}

type StudentUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=255"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
	BeltLevel *string `json:"belt_level" validate:"omitempty,oneof=White Blue Purple Brown Black"`
}

type StudentResponse struct {
	StudentID  uuid.UUID `json:"student_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	BeltLevel  string    `json:"belt_level"`
	MemberID   string    `json:"member_id"`
	CardNumber string    `json:"card_number"`
	CreatedAt  string    `json:"created_at"`
}

func (r *StudentCreateRequest) ToModel(gymID uuid.UUID) *model.StudentModel {
	belt := strings.TrimSpace(r.BeltLevel)
	if belt == "" {
		belt = "White"
	}
	return &model.StudentModel{
		StudentGymID:     gymID,
		StudentName:      strings.TrimSpace(r.Name),
		StudentEmail:     strings.TrimSpace(r.Email),
		StudentPhone:     strings.TrimSpace(r.Phone),
		StudentBeltLevel: belt,
	}
}

func ToStudentResponse(m *model.StudentModel) *StudentResponse {
	return &StudentResponse{
		StudentID:  m.StudentID,
		Name:       m.StudentName,
		Email:      m.StudentEmail,
		Phone:      m.StudentPhone,
		BeltLevel:  m.StudentBeltLevel,
		MemberID:   m.StudentMemberID,
		CardNumber: m.StudentCardNumber,
		CreatedAt:  m.StudentCreatedAt.Format(time.RFC3339),
	}
}

func ToStudentResponseList(models []model.StudentModel) []StudentResponse {
	result := make([]StudentResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToStudentResponse(&models[i]))
	}
	return result
}
