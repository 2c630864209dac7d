package backup

import (
	"github.com/Rage-Op/CKA-Backend/app/config"

	"github.com/gofiber/fiber/v2"
)

// SetupBackupRoutes sets up the backup routes
func SetupBackupRoutes(app *fiber.App) {
	app.Get("/backup", func(c *fiber.Ctx) error {
		return RunBackupAPI(c, config.GetDB())
	})

	app.Get("/backup/latest", func(c *fiber.Ctx) error {
		return GetLatestBackupAPI(c, config.GetDB())
	})
}
