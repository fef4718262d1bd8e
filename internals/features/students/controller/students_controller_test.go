package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gympro_backend/internals/features/students/model"
	helper "gympro_backend/internals/helpers"
)

// openTestDB connects to the database named by TEST_DATABASE_URL; without
// it the DB-backed tests are skipped.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.StudentModel{}); err != nil {
		t.Fatalf("migrate students: %v", err)
	}
	return db
}

func cleanupGyms(t *testing.T, db *gorm.DB, gymIDs ...uuid.UUID) {
	t.Cleanup(func() {
		db.Where("student_gym_id IN ?", gymIDs).Delete(&model.StudentModel{})
	})
}

// newStudentTestApp mounts the student handlers behind a stub that injects
// the tenant claim, the way the auth middleware does in production.
func newStudentTestApp(db *gorm.DB, gymID uuid.UUID) *fiber.App {
	ctrl := NewStudentController(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("gym_id", gymID.String())
		c.Locals("admin_id", uuid.NewString())
		return c.Next()
	})
	app.Get("/students", ctrl.GetStudents)
	app.Post("/students", ctrl.CreateStudent)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	httpReq := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(httpReq, 10000)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var parsed map[string]any
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func studentNames(data any) []string {
	names := []string{}
	list, _ := data.([]any)
	for _, item := range list {
		entry, _ := item.(map[string]any)
		name, _ := entry["name"].(string)
		names = append(names, name)
	}
	return names
}

func TestStudentsTenantIsolation(t *testing.T) {
	db := openTestDB(t)
	gymA, gymB := uuid.New(), uuid.New()
	cleanupGyms(t, db, gymA, gymB)

	appA := newStudentTestApp(db, gymA)
	appB := newStudentTestApp(db, gymB)

	for _, name := range []string{"Alice Moraes", "Bob Tanaka"} {
		status, _ := doJSON(t, appA, "POST", "/students", fmt.Sprintf(`{"name":%q}`, name))
		assert.Equal(t, fiber.StatusCreated, status)
	}
	status, _ := doJSON(t, appB, "POST", "/students", `{"name":"Carol Mendes"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	// Each tenant sees only its own students; the other gym's rows never
	// leak into the listing.
	status, parsed := doJSON(t, appA, "GET", "/students", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Alice Moraes", "Bob Tanaka"}, studentNames(parsed["data"]))

	status, parsed = doJSON(t, appB, "GET", "/students", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Carol Mendes"}, studentNames(parsed["data"]))
}

func TestStudentNumberingPerTenant(t *testing.T) {
	db := openTestDB(t)
	gymA, gymB := uuid.New(), uuid.New()
	cleanupGyms(t, db, gymA, gymB)

	appA := newStudentTestApp(db, gymA)
	appB := newStudentTestApp(db, gymB)

	_, first := doJSON(t, appA, "POST", "/students", `{"name":"Alice Moraes"}`)
	_, second := doJSON(t, appA, "POST", "/students", `{"name":"Bob Tanaka"}`)
	_, other := doJSON(t, appB, "POST", "/students", `{"name":"Carol Mendes"}`)

	firstData, _ := first["data"].(map[string]any)
	secondData, _ := second["data"].(map[string]any)
	otherData, _ := other["data"].(map[string]any)

	assert.Equal(t, "MBR001", firstData["member_id"])
	assert.Equal(t, "CARD1001", firstData["card_number"])
	assert.Equal(t, "MBR002", secondData["member_id"])
	assert.Equal(t, "CARD1002", secondData["card_number"])

	// The second gym starts its own sequence from 1.
	assert.Equal(t, "MBR001", otherData["member_id"])
	assert.Equal(t, "CARD1001", otherData["card_number"])
}

func TestDuplicateMemberSeqIsConflict(t *testing.T) {
	db := openTestDB(t)
	gym := uuid.New()
	cleanupGyms(t, db, gym)

	first := &model.StudentModel{
		StudentGymID:      gym,
		StudentName:       "Alice Moraes",
		StudentBeltLevel:  "White",
		StudentMemberSeq:  1,
		StudentMemberID:   "MBR001",
		StudentCardNumber: "CARD1001",
	}
	assert.NoError(t, db.Create(first).Error)

	// Same (gym, seq) pair as a racing insert would produce.
	dup := &model.StudentModel{
		StudentGymID:      gym,
		StudentName:       "Bob Tanaka",
		StudentBeltLevel:  "White",
		StudentMemberSeq:  1,
		StudentMemberID:   "MBR001-dup",
		StudentCardNumber: "CARD1001-dup",
	}
	err := db.Create(dup).Error
	assert.Error(t, err)
	assert.True(t, helper.IsUniqueViolation(err))

	// The same error through the controller's error path surfaces as 409.
	app := fiber.New()
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return helper.WritePGError(c, err)
	})
	resp, testErr := app.Test(httptest.NewRequest("GET", "/conflict", nil))
	assert.NoError(t, testErr)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
