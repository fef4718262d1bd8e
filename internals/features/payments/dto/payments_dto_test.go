package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPaymentCreateRequestValidation(t *testing.T) {
	validate := validator.New()

	valid := PaymentCreateRequest{
		StudentID: uuid.New(),
		Amount:    150.00,
		Type:      "monthly",
		Method:    "card",
	}
	assert.NoError(t, validate.Struct(valid))

	tests := []struct {
		name   string
		mutate func(*PaymentCreateRequest)
	}{
		{"missing student", func(r *PaymentCreateRequest) { r.StudentID = uuid.Nil }},
		{"unknown type", func(r *PaymentCreateRequest) { r.Type = "lifetime" }},
		{"unknown method", func(r *PaymentCreateRequest) { r.Method = "crypto" }},
		{"missing type", func(r *PaymentCreateRequest) { r.Type = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, validate.Struct(req))
		})
	}
}

func TestPaymentCreateRequestAmountNotFieldValidated(t *testing.T) {
	// A non-positive amount passes field validation; the controller rejects
	// it with 400 instead of a 422.
	validate := validator.New()
	req := PaymentCreateRequest{
		StudentID: uuid.New(),
		Amount:    -5,
		Type:      "monthly",
		Method:    "cash",
	}
	assert.NoError(t, validate.Struct(req))
}

func TestPaymentCreateRequestAcceptedValues(t *testing.T) {
	validate := validator.New()

	for _, typ := range []string{"monthly", "annual", "drop_in", "private", "gear"} {
		for _, method := range []string{"card", "cash", "transfer", "check"} {
			req := PaymentCreateRequest{
				StudentID: uuid.New(),
				Amount:    25,
				Type:      typ,
				Method:    method,
			}
			assert.NoError(t, validate.Struct(req), "type=%s method=%s", typ, method)
		}
	}
}

func TestPaymentToModelScopesTenant(t *testing.T) {
	gymID := uuid.New()
	req := PaymentCreateRequest{
		StudentID: uuid.New(),
		Amount:    99.90,
		Type:      "drop_in",
		Method:    "cash",
	}

	m := req.ToModel(gymID)
	assert.Equal(t, gymID, m.PaymentGymID)
	assert.Equal(t, req.StudentID, m.PaymentStudentID)
	assert.Equal(t, 99.90, m.PaymentAmount)
}
