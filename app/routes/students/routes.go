package students

import (
	"github.com/Rage-Op/CKA-Backend/app/config"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App) {
	app.Get("/students", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})

	app.Get("/ascending-students", func(c *fiber.Ctx) error {
		return GetAscendingStudentsAPI(c, config.GetDB())
	})

	app.Get("/students/search/:studentId", func(c *fiber.Ctx) error {
		return SearchStudentAPI(c, config.GetDB())
	})

	app.Post("/students/add", func(c *fiber.Ctx) error {
		return EnrollStudentAPI(c, config.GetDB())
	})

	app.Patch("/students/update/:studentId", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, config.GetDB())
	})

	app.Delete("/students/delete/:studentId", func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, config.GetDB())
	})

	app.Post("/students/credit/:studentId", func(c *fiber.Ctx) error {
		return AddCreditAPI(c, config.GetDB())
	})
}
