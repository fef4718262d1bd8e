package dto

import (
	"time"

	"github.com/google/uuid"

	"gympro_backend/internals/features/payments/model"
)

// Amount carries no validator tag: a non-positive amount is a domain error
// the controller answers with 400, not a 422 from field validation.
type PaymentCreateRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type" validate:"required,oneof=monthly annual drop_in private gear"`
	Method    string    `json:"method" validate:"required,oneof=card cash transfer check"`
}

type PaymentResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`
	StudentID uuid.UUID `json:"student_id"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Method    string    `json:"method"`
	CreatedAt string    `json:"created_at"`
}

func (r *PaymentCreateRequest) ToModel(gymID uuid.UUID) *model.PaymentModel {
	return &model.PaymentModel{
		PaymentGymID:     gymID,
		PaymentStudentID: r.StudentID,
		PaymentAmount:    r.Amount,
		PaymentType:      r.Type,
		PaymentMethod:    r.Method,
	}
}

func ToPaymentResponse(m *model.PaymentModel) *PaymentResponse {
	return &PaymentResponse{
		PaymentID: m.PaymentID,
		StudentID: m.PaymentStudentID,
		Amount:    m.PaymentAmount,
		Type:      m.PaymentType,
		Method:    m.PaymentMethod,
		CreatedAt: m.PaymentCreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponseList(models []model.PaymentModel) []PaymentResponse {
	result := make([]PaymentResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToPaymentResponse(&models[i]))
	}
	return result
}
