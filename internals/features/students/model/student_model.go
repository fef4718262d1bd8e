package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	StudentID    uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentGymID uuid.UUID `gorm:"column:student_gym_id;type:uuid;not null;index:idx_students_gym_id;uniqueIndex:ux_students_member_seq,priority:1;uniqueIndex:ux_students_member_id,priority:1;uniqueIndex:ux_students_card_number,priority:1" json:"student_gym_id"`

	StudentName      string `gorm:"column:student_name;type:varchar(255);not null" json:"student_name"`
	StudentEmail     string `gorm:"column:student_email;type:varchar(255)" json:"student_email"`
	StudentPhone     string `gorm:"column:student_phone;type:varchar(50)" json:"student_phone"`
	StudentBeltLevel string `gorm:"column:student_belt_level;type:varchar(20);default:White" json:"student_belt_level"`

	// Per-gym sequence behind member_id / card_number. The composite unique
	// indexes are the invariant; a concurrent insert racing for the same
	// seq is rejected by the DB and surfaced as a 409.
	StudentMemberSeq  int    `gorm:"column:student_member_seq;not null;uniqueIndex:ux_students_member_seq,priority:2" json:"-"`
	StudentMemberID   string `gorm:"column:student_member_id;type:varchar(20);not null;uniqueIndex:ux_students_member_id,priority:2" json:"student_member_id"`
	StudentCardNumber string `gorm:"column:student_card_number;type:varchar(20);not null;uniqueIndex:ux_students_card_number,priority:2" json:"student_card_number"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;type:timestamptz;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;type:timestamptz;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
