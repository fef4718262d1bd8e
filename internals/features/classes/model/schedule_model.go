package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleModel is the derived weekly slot. Exactly one row per class,
// created and deleted in the same transaction as its owning class.
type ScheduleModel struct {
	ScheduleID      uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`
	ScheduleGymID   uuid.UUID `gorm:"column:schedule_gym_id;type:uuid;not null;index:idx_schedules_gym_id" json:"schedule_gym_id"`
	ScheduleClassID uuid.UUID `gorm:"column:schedule_class_id;type:uuid;not null;uniqueIndex:ux_schedules_class_id" json:"schedule_class_id"`

	ScheduleClassName  string `gorm:"column:schedule_class_name;type:varchar(255);not null" json:"schedule_class_name"`
	ScheduleDayOfWeek  int    `gorm:"column:schedule_day_of_week;not null" json:"schedule_day_of_week"`
	ScheduleStartTime  string `gorm:"column:schedule_start_time;type:varchar(5);not null" json:"schedule_start_time"`
	ScheduleEndTime    string `gorm:"column:schedule_end_time;type:varchar(5);not null" json:"schedule_end_time"`
	ScheduleInstructor string `gorm:"column:schedule_instructor;type:varchar(255)" json:"schedule_instructor"`
	ScheduleCapacity   int    `gorm:"column:schedule_capacity;default:20" json:"schedule_capacity"`

	ScheduleCreatedAt time.Time `gorm:"column:schedule_created_at;type:timestamptz;autoCreateTime" json:"schedule_created_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
