package dashboard

import (
	"github.com/Rage-Op/CKA-Backend/app/config"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("dashboard/index", fiber.Map{
			"Title":       "Dashboard - CKA",
			"CurrentPage": "dashboard",
		})
	})

	app.Get("/api/dashboard/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, config.GetDB())
	})
}
