package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gympro_backend/internals/constants"
	classModel "gympro_backend/internals/features/classes/model"
)

// CurrentClass is the slot a walk-in check-in is attributed to.
type CurrentClass struct {
	ClassID    *uuid.UUID
	ClassName  string
	Instructor string
}

// SlotActiveAt reports whether a weekly slot covers the given local day and
// HH:MM clock value. Times are stored zero-padded so string comparison
// matches chronological order.
func SlotActiveAt(s *classModel.ScheduleModel, dayOfWeek int, clock string) bool {
	return s.ScheduleDayOfWeek == dayOfWeek &&
		s.ScheduleStartTime <= clock &&
		s.ScheduleEndTime >= clock
}

// ResolveCurrentClass picks the slot running right now for a gym, falling
// back to Open Mat if nothing is scheduled.
func ResolveCurrentClass(db *gorm.DB, gymID uuid.UUID, now time.Time) (*CurrentClass, error) {
	// time.Weekday is Sunday=0; schedules store Monday=0 like the UI.
	dayOfWeek := (int(now.Weekday()) + 6) % 7
	clock := now.Format("15:04")

	var slots []classModel.ScheduleModel
	if err := db.
		Where("schedule_gym_id = ? AND schedule_day_of_week = ?", gymID, dayOfWeek).
		Order("schedule_start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	for i := range slots {
		if !SlotActiveAt(&slots[i], dayOfWeek, clock) {
			continue
		}
		classID := slots[i].ScheduleClassID
		return &CurrentClass{
			ClassID:    &classID,
			ClassName:  slots[i].ScheduleClassName,
			Instructor: slots[i].ScheduleInstructor,
		}, nil
	}

	return &CurrentClass{
		ClassName:  constants.OpenMatClassName,
		Instructor: constants.OpenMatInstructor,
	}, nil
}
