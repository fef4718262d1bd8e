package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/attendance/dto"
	"gympro_backend/internals/features/attendance/model"
	"gympro_backend/internals/features/attendance/service"
	classModel "gympro_backend/internals/features/classes/model"
	studentModel "gympro_backend/internals/features/students/model"
	helper "gympro_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

// POST /api/checkin
// Appends one immutable attendance row. Multiple check-ins per day are
// allowed by design.
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] checkin body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.StudentID == nil && req.CardNumber == "" && req.StudentName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"student_id, card_number or student_name is required")
	}

	// Resolve the student. id and card number must match a record; a bare
	// name is accepted for walk-ins that were never registered.
	var student *studentModel.StudentModel
	switch {
	case req.StudentID != nil:
		student = &studentModel.StudentModel{}
		err = ctrl.DB.
			Where("student_id = ? AND student_gym_id = ?", *req.StudentID, gymID).
			First(student).Error
	case req.CardNumber != "":
		student = &studentModel.StudentModel{}
		err = ctrl.DB.
			Where("student_card_number = ? AND student_gym_id = ?", req.CardNumber, gymID).
			First(student).Error
	default:
		student = &studentModel.StudentModel{}
		err = ctrl.DB.
			Where("student_name = ? AND student_gym_id = ?", req.StudentName, gymID).
			First(student).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			student = nil
			err = nil
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[ERROR] checkin student lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up student")
	}

	// Resolve the class: an explicit class_id wins, otherwise whatever slot
	// is running now, with Open Mat as the fallback.
	var current *service.CurrentClass
	if req.ClassID != nil {
		var class classModel.ClassModel
		if err := ctrl.DB.
			Where("class_id = ? AND class_gym_id = ?", *req.ClassID, gymID).
			First(&class).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up class")
		}
		classID := class.ClassID
		current = &service.CurrentClass{
			ClassID:    &classID,
			ClassName:  class.ClassName,
			Instructor: class.ClassInstructor,
		}
	} else {
		current, err = service.ResolveCurrentClass(ctrl.DB, gymID, time.Now())
		if err != nil {
			log.Printf("[ERROR] resolve current class: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve current class")
		}
	}

	entry := model.AttendanceLogModel{
		AttendanceGymID:     gymID,
		AttendanceClassID:   current.ClassID,
		AttendanceClassName: current.ClassName,
		AttendanceNotes:     req.Notes,
	}
	if student != nil {
		studentID := student.StudentID
		entry.AttendanceStudentID = &studentID
		entry.AttendanceStudentName = student.StudentName
		entry.AttendanceMemberID = student.StudentMemberID
		entry.AttendanceCardNumber = student.StudentCardNumber
	} else {
		entry.AttendanceStudentName = req.StudentName
	}

	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] create attendance log: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record check-in")
	}

	return helper.JsonCreated(c, "Checked in successfully", dto.CheckInResponse{
		AttendanceID: entry.AttendanceID,
		StudentName:  entry.AttendanceStudentName,
		MemberID:     entry.AttendanceMemberID,
		CardNumber:   entry.AttendanceCardNumber,
		ClassName:    entry.AttendanceClassName,
		Instructor:   current.Instructor,
		CheckInTime:  entry.AttendanceCheckInTime.Format(time.RFC3339),
	})
}

// GET /api/attendance — latest 500 check-ins for the gym.
func (ctrl *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var logs []model.AttendanceLogModel
	if err := ctrl.DB.
		Where("attendance_gym_id = ?", gymID).
		Order("attendance_check_in_time DESC").
		Limit(500).
		Find(&logs).Error; err != nil {
		log.Printf("[ERROR] list attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	return helper.JsonOK(c, "Attendance loaded", dto.ToAttendanceResponseList(logs))
}

// GET /api/current-class — used by the front-desk kiosk display.
func (ctrl *AttendanceController) GetCurrentClass(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	current, err := service.ResolveCurrentClass(ctrl.DB, gymID, time.Now())
	if err != nil {
		log.Printf("[ERROR] resolve current class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve current class")
	}
	return helper.JsonOK(c, "Current class", dto.CurrentClassResponse{
		ClassName:  current.ClassName,
		Instructor: current.Instructor,
	})
}
