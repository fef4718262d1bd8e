package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "gympro_backend/internals/features/attendance/model"
	paymentModel "gympro_backend/internals/features/payments/model"
	"gympro_backend/internals/features/students/dto"
	"gympro_backend/internals/features/students/model"
	"gympro_backend/internals/features/students/service"
	helper "gympro_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

// GET /api/students
func (ctrl *StudentController) GetStudents(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var students []model.StudentModel
	if err := ctrl.DB.
		Where("student_gym_id = ?", gymID).
		Order("student_name ASC").
		Find(&students).Error; err != nil {
		log.Printf("[ERROR] list students: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	return helper.JsonOK(c, "Students loaded", dto.ToStudentResponseList(students))
}

// POST /api/students
// Member id and card number are assigned from the per-gym sequence inside
// the insert transaction.
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] student body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student := req.ToModel(gymID)
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		seq, err := service.NextMemberSeq(tx, gymID)
		if err != nil {
			return err
		}
		student.StudentMemberSeq = seq
		student.StudentMemberID = service.FormatMemberID(seq)
		student.StudentCardNumber = service.FormatCardNumber(seq)
		return tx.Create(student).Error
	})
	if err != nil {
		log.Printf("[ERROR] create student: %v", err)
		if helper.IsUniqueViolation(err) {
			// A concurrent insert won the member sequence; the client retries.
			return helper.JsonError(c, fiber.StatusConflict,
				"Member number was assigned concurrently, please retry")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Student created successfully", dto.ToStudentResponse(student))
}

// PUT /api/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}

	var student model.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_gym_id = ?", id, gymID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["student_name"] = *req.Name
	}
	if req.Email != nil {
		updates["student_email"] = *req.Email
	}
	if req.Phone != nil {
		updates["student_phone"] = *req.Phone
	}
	if req.BeltLevel != nil {
		updates["student_belt_level"] = *req.BeltLevel
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&student).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update student %s: %v", id, err)
		return helper.WritePGError(c, err)
	}
	if err := ctrl.DB.
		Where("student_id = ?", student.StudentID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload student")
	}

	return helper.JsonUpdated(c, "Student updated successfully", dto.ToStudentResponse(&student))
}

// DELETE /api/students/:id
// Deletion is blocked while attendance or payment history exists, those
// records are immutable and must stay attributable.
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}

	var student model.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_gym_id = ?", id, gymID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	var attendanceCount int64
	if err := ctrl.DB.Model(&attendanceModel.AttendanceLogModel{}).
		Where("attendance_gym_id = ? AND attendance_student_id = ?", gymID, student.StudentID).
		Count(&attendanceCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check attendance history")
	}
	var paymentCount int64
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Where("payment_gym_id = ? AND payment_student_id = ?", gymID, student.StudentID).
		Count(&paymentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check payment history")
	}
	if attendanceCount > 0 || paymentCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"Student has attendance or payment history and cannot be deleted")
	}

	if err := ctrl.DB.Delete(&student).Error; err != nil {
		log.Printf("[ERROR] delete student %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "Student deleted successfully", fiber.Map{"student_id": student.StudentID})
}
