package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	studentCtrl := controller.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", studentCtrl.GetStudents)
	students.Post("/", studentCtrl.CreateStudent)
	students.Put("/:id", studentCtrl.UpdateStudent)
	students.Delete("/:id", studentCtrl.DeleteStudent)
}
