package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	classModel "gympro_backend/internals/features/classes/model"
)

func TestSlotActiveAt(t *testing.T) {
	slot := &classModel.ScheduleModel{
		ScheduleDayOfWeek: 2, // Wednesday (Monday=0)
		ScheduleStartTime: "18:00",
		ScheduleEndTime:   "19:30",
	}

	tests := []struct {
		name  string
		day   int
		clock string
		want  bool
	}{
		{"before start", 2, "17:59", false},
		{"at start", 2, "18:00", true},
		{"middle", 2, "18:45", true},
		{"at end", 2, "19:30", true},
		{"after end", 2, "19:31", false},
		{"wrong day", 3, "18:45", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotActiveAt(slot, tt.day, tt.clock))
		})
	}
}

func TestSlotActiveAtMorningSlot(t *testing.T) {
	// Zero-padded times keep string comparison chronological across 09:xx/10:xx.
	slot := &classModel.ScheduleModel{
		ScheduleDayOfWeek: 0,
		ScheduleStartTime: "09:00",
		ScheduleEndTime:   "10:00",
	}
	assert.True(t, SlotActiveAt(slot, 0, "09:30"))
	assert.False(t, SlotActiveAt(slot, 0, "10:01"))
	assert.False(t, SlotActiveAt(slot, 0, "08:59"))
}
