package settings

import (
	"github.com/Rage-Op/CKA-Backend/app/config"

	"github.com/gofiber/fiber/v2"
)

// SetupSettingsRoutes sets up the settings routes
func SetupSettingsRoutes(app *fiber.App) {
	app.Get("/settings", func(c *fiber.Ctx) error {
		return GetSettingsAPI(c, config.GetDB())
	})

	app.Patch("/settings", func(c *fiber.Ctx) error {
		return UpdateSettingsAPI(c, config.GetDB())
	})
}
