package main

import (
	"log"

	"github.com/Rage-Op/CKA-Backend/app/config"
	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/Rage-Op/CKA-Backend/app/routes/backup"
	"github.com/Rage-Op/CKA-Backend/app/routes/dashboard"
	"github.com/Rage-Op/CKA-Backend/app/routes/debit"
	"github.com/Rage-Op/CKA-Backend/app/routes/settings"
	"github.com/Rage-Op/CKA-Backend/app/routes/students"
	"github.com/Rage-Op/CKA-Backend/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders web errors for page requests and a JSON envelope
// for everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// The dashboard is the only rendered page; every other route is API
	if c.Path() == "/" {
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - CKA",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Load environment and initialize database
	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler (nightly backup snapshot)
	services.StartScheduler(config.GetDB(), config.AppConfig.BackupHour)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup settings routes
	settings.SetupSettingsRoutes(app)

	// Setup debit routes
	debit.SetupDebitRoutes(app)

	// Setup backup routes
	backup.SetupBackupRoutes(app)

	port := config.AppConfig.Port
	log.Printf("Server is up and listening on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
