package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newPaymentTestApp() *fiber.App {
	ctrl := NewPaymentController(nil)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("gym_id", uuid.NewString())
		c.Locals("admin_id", uuid.NewString())
		return c.Next()
	})
	app.Post("/payments", ctrl.RecordPayment)
	return app
}

func postPayment(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/payments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var parsed map[string]any
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	app := newPaymentTestApp()

	for _, amount := range []float64{0, -5, -150.75} {
		body := fmt.Sprintf(
			`{"student_id":%q,"amount":%v,"type":"monthly","method":"cash"}`,
			uuid.NewString(), amount,
		)
		status, parsed := postPayment(t, app, body)
		assert.Equal(t, fiber.StatusBadRequest, status, "amount=%v", amount)
		assert.Equal(t, false, parsed["success"])
		assert.Equal(t, "BAD_REQUEST", parsed["error_code"])
	}
}

func TestRecordPaymentRejectsUnknownEnums(t *testing.T) {
	app := newPaymentTestApp()

	body := fmt.Sprintf(
		`{"student_id":%q,"amount":50,"type":"lifetime","method":"cash"}`,
		uuid.NewString(),
	)
	status, parsed := postPayment(t, app, body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", parsed["error_code"])
}
