package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gympro_backend/internals/features/classes/controller"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	classCtrl := controller.NewClassController(db)

	classes := api.Group("/classes")
	classes.Get("/", classCtrl.GetClasses)
	classes.Post("/", classCtrl.CreateClass)
	classes.Put("/:id", classCtrl.UpdateClass)
	classes.Delete("/:id", classCtrl.DeleteClass)

	api.Get("/schedules", classCtrl.GetSchedules)
}
