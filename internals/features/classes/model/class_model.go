package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassModel struct {
	ClassID    uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassGymID uuid.UUID `gorm:"column:class_gym_id;type:uuid;not null;index:idx_classes_gym_id;uniqueIndex:ux_classes_name,priority:1" json:"class_gym_id"`

	ClassName        string `gorm:"column:class_name;type:varchar(255);not null;uniqueIndex:ux_classes_name,priority:2" json:"class_name"`
	ClassDescription string `gorm:"column:class_description;type:text" json:"class_description"`
	ClassInstructor  string `gorm:"column:class_instructor;type:varchar(255)" json:"class_instructor"`
	ClassCapacity    int    `gorm:"column:class_capacity;default:20" json:"class_capacity"`
	ClassDuration    int    `gorm:"column:class_duration;default:60" json:"class_duration"`

	// Weekly slot; mirrored 1:1 into schedules at creation time.
	ClassDayOfWeek int    `gorm:"column:class_day_of_week;not null" json:"class_day_of_week"`
	ClassStartTime string `gorm:"column:class_start_time;type:varchar(5);not null" json:"class_start_time"`
	ClassEndTime   string `gorm:"column:class_end_time;type:varchar(5);not null" json:"class_end_time"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;type:timestamptz;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;type:timestamptz;autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}
