package debit

import (
	"github.com/Rage-Op/CKA-Backend/app/config"

	"github.com/gofiber/fiber/v2"
)

// SetupDebitRoutes sets up the batch debit and debit log routes
func SetupDebitRoutes(app *fiber.App) {
	app.Patch("/debit", func(c *fiber.Ctx) error {
		return RunDebitAPI(c, config.GetDB())
	})

	app.Get("/debit/runs", func(c *fiber.Ctx) error {
		return GetDebitRunsAPI(c, config.GetDB())
	})

	app.Get("/debit-log", func(c *fiber.Ctx) error {
		return GetDebitLogAPI(c, config.GetDB())
	})

	app.Patch("/debit-log", func(c *fiber.Ctx) error {
		return UpdateDebitLogAPI(c, config.GetDB())
	})

	app.Get("/bs-date", GetBSDateAPI)
}
