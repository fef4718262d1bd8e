package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel is an append-only ledger row. No update or delete endpoints
// exist for payments.
type PaymentModel struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentGymID     uuid.UUID `gorm:"column:payment_gym_id;type:uuid;not null;index:idx_payments_gym_id" json:"payment_gym_id"`
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index:idx_payments_student_id" json:"payment_student_id"`

	PaymentAmount float64 `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaymentType   string  `gorm:"column:payment_type;type:varchar(20);not null" json:"payment_type"`
	PaymentMethod string  `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;type:timestamptz;autoCreateTime;index:idx_payments_created_at" json:"payment_created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
