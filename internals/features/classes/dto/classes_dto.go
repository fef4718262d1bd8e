package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gympro_backend/internals/features/classes/model"
)

type ClassCreateRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Instructor  string `json:"instructor" validate:"omitempty,max=255"`
	Capacity    int    `json:"capacity" validate:"omitempty,min=1,max=500"`
	Duration    int    `json:"duration" validate:"omitempty,min=15,max=300"`
	DayOfWeek   *int   `json:"day_of_week" validate:"required,min=0,max=6"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
}

type ClassUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Instructor  *string `json:"instructor" validate:"omitempty,max=255"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1,max=500"`
	Duration    *int    `json:"duration" validate:"omitempty,min=15,max=300"`
	DayOfWeek   *int    `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	StartTime   *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time" validate:"omitempty,datetime=15:04"`
}

type ClassResponse struct {
	ClassID     uuid.UUID `json:"class_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	Capacity    int       `json:"capacity"`
	Duration    int       `json:"duration"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   string    `json:"created_at"`
}

type ScheduleResponse struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	ClassID    uuid.UUID `json:"class_id"`
	ClassName  string    `json:"class_name"`
	DayOfWeek  int       `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Instructor string    `json:"instructor"`
	Capacity   int       `json:"capacity"`
}

func (r *ClassCreateRequest) ToModel(gymID uuid.UUID) *model.ClassModel {
	capacity := r.Capacity
	if capacity == 0 {
		capacity = 20
	}
	duration := r.Duration
	if duration == 0 {
		duration = 60
	}
	return &model.ClassModel{
		ClassGymID:       gymID,
		ClassName:        strings.TrimSpace(r.Name),
		ClassDescription: strings.TrimSpace(r.Description),
		ClassInstructor:  strings.TrimSpace(r.Instructor),
		ClassCapacity:    capacity,
		ClassDuration:    duration,
		ClassDayOfWeek:   *r.DayOfWeek,
		ClassStartTime:   r.StartTime,
		ClassEndTime:     r.EndTime,
	}
}

// DeriveSchedule builds the one weekly slot owned by a class. Day, times,
// instructor and capacity always mirror the class row.
func DeriveSchedule(m *model.ClassModel) *model.ScheduleModel {
	return &model.ScheduleModel{
		ScheduleGymID:      m.ClassGymID,
		ScheduleClassID:    m.ClassID,
		ScheduleClassName:  m.ClassName,
		ScheduleDayOfWeek:  m.ClassDayOfWeek,
		ScheduleStartTime:  m.ClassStartTime,
		ScheduleEndTime:    m.ClassEndTime,
		ScheduleInstructor: m.ClassInstructor,
		ScheduleCapacity:   m.ClassCapacity,
	}
}

func ToClassResponse(m *model.ClassModel) *ClassResponse {
	return &ClassResponse{
		ClassID:     m.ClassID,
		Name:        m.ClassName,
		Description: m.ClassDescription,
		Instructor:  m.ClassInstructor,
		Capacity:    m.ClassCapacity,
		Duration:    m.ClassDuration,
		DayOfWeek:   m.ClassDayOfWeek,
		StartTime:   m.ClassStartTime,
		EndTime:     m.ClassEndTime,
		CreatedAt:   m.ClassCreatedAt.Format(time.RFC3339),
	}
}

func ToClassResponseList(models []model.ClassModel) []ClassResponse {
	result := make([]ClassResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToClassResponse(&models[i]))
	}
	return result
}

func ToScheduleResponse(m *model.ScheduleModel) *ScheduleResponse {
	return &ScheduleResponse{
		ScheduleID: m.ScheduleID,
		ClassID:    m.ScheduleClassID,
		ClassName:  m.ScheduleClassName,
		DayOfWeek:  m.ScheduleDayOfWeek,
		StartTime:  m.ScheduleStartTime,
		EndTime:    m.ScheduleEndTime,
		Instructor: m.ScheduleInstructor,
		Capacity:   m.ScheduleCapacity,
	}
}

func ToScheduleResponseList(models []model.ScheduleModel) []ScheduleResponse {
	result := make([]ScheduleResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToScheduleResponse(&models[i]))
	}
	return result
}
