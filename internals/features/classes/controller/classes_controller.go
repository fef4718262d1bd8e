package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/classes/dto"
	"gympro_backend/internals/features/classes/model"
	helper "gympro_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// GET /api/classes
func (ctrl *ClassController) GetClasses(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var classes []model.ClassModel
	if err := ctrl.DB.
		Where("class_gym_id = ?", gymID).
		Order("class_name ASC").
		Find(&classes).Error; err != nil {
		log.Printf("[ERROR] list classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}

	return helper.JsonOK(c, "Classes loaded", dto.ToClassResponseList(classes))
}

// POST /api/classes
// Class and its weekly schedule slot are created in one transaction, never
// one without the other.
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] class body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.EndTime <= req.StartTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	class := req.ToModel(gymID)
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(class).Error; err != nil {
			return err
		}
		return tx.Create(dto.DeriveSchedule(class)).Error
	})
	if err != nil {
		log.Printf("[ERROR] create class: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Class created successfully", dto.ToClassResponse(class))
}

// PUT /api/classes/:id
// Slot fields are mirrored into the derived schedule in the same
// transaction so the two rows never drift apart.
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class ID is required")
	}

	var class model.ClassModel
	if err := ctrl.DB.
		Where("class_id = ? AND class_gym_id = ?", id, gymID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}

	var req dto.ClassUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	classUpdates := map[string]interface{}{}
	scheduleUpdates := map[string]interface{}{}
	if req.Name != nil {
		classUpdates["class_name"] = *req.Name
		scheduleUpdates["schedule_class_name"] = *req.Name
	}
	if req.Description != nil {
		classUpdates["class_description"] = *req.Description
	}
	if req.Instructor != nil {
		classUpdates["class_instructor"] = *req.Instructor
		scheduleUpdates["schedule_instructor"] = *req.Instructor
	}
	if req.Capacity != nil {
		classUpdates["class_capacity"] = *req.Capacity
		scheduleUpdates["schedule_capacity"] = *req.Capacity
	}
	if req.Duration != nil {
		classUpdates["class_duration"] = *req.Duration
	}
	if req.DayOfWeek != nil {
		classUpdates["class_day_of_week"] = *req.DayOfWeek
		scheduleUpdates["schedule_day_of_week"] = *req.DayOfWeek
	}
	if req.StartTime != nil {
		classUpdates["class_start_time"] = *req.StartTime
		scheduleUpdates["schedule_start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		classUpdates["class_end_time"] = *req.EndTime
		scheduleUpdates["schedule_end_time"] = *req.EndTime
	}
	if len(classUpdates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	startTime, endTime := class.ClassStartTime, class.ClassEndTime
	if req.StartTime != nil {
		startTime = *req.StartTime
	}
	if req.EndTime != nil {
		endTime = *req.EndTime
	}
	if endTime <= startTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&class).Updates(classUpdates).Error; err != nil {
			return err
		}
		if len(scheduleUpdates) == 0 {
			return nil
		}
		return tx.Model(&model.ScheduleModel{}).
			Where("schedule_class_id = ?", class.ClassID).
			Updates(scheduleUpdates).Error
	})
	if err != nil {
		log.Printf("[ERROR] update class %s: %v", id, err)
		return helper.WritePGError(c, err)
	}

	if err := ctrl.DB.Where("class_id = ?", class.ClassID).First(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload class")
	}
	return helper.JsonUpdated(c, "Class updated successfully", dto.ToClassResponse(&class))
}

// DELETE /api/classes/:id
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class ID is required")
	}

	var class model.ClassModel
	if err := ctrl.DB.
		Where("class_id = ? AND class_gym_id = ?", id, gymID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("schedule_class_id = ?", class.ClassID).
			Delete(&model.ScheduleModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&class).Error
	})
	if err != nil {
		log.Printf("[ERROR] delete class %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}

	return helper.JsonDeleted(c, "Class deleted successfully", fiber.Map{"class_id": class.ClassID})
}

// GET /api/schedules — read-only weekly timetable.
func (ctrl *ClassController) GetSchedules(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var schedules []model.ScheduleModel
	if err := ctrl.DB.
		Where("schedule_gym_id = ?", gymID).
		Order("schedule_day_of_week ASC, schedule_start_time ASC").
		Find(&schedules).Error; err != nil {
		log.Printf("[ERROR] list schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedules")
	}

	return helper.JsonOK(c, "Schedules loaded", dto.ToScheduleResponseList(schedules))
}
