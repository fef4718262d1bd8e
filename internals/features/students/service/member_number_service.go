package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card numbers start at 1001 so they stay four digits for the first nine
// hundred students of a gym.
const cardNumberBase = 1000

func FormatMemberID(seq int) string {
	return fmt.Sprintf("MBR%03d", seq)
}

func FormatCardNumber(seq int) string {
	return fmt.Sprintf("CARD%04d", cardNumberBase+seq)
}

// NextMemberSeq returns the next per-gym sequence value. Must run inside
// the same transaction as the insert; the unique index on
// (student_gym_id, student_member_seq) catches the losing side of a race.
func NextMemberSeq(tx *gorm.DB, gymID uuid.UUID) (int, error) {
	var maxSeq int
	err := tx.Raw(
		`SELECT COALESCE(MAX(student_member_seq), 0) FROM students WHERE student_gym_id = ?`,
		gymID,
	).Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq + 1, nil
}
