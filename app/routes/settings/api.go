package settings

import (
	"database/sql"
	"errors"
	"log"

	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetSettingsAPI returns the fee schedule singleton.
func GetSettingsAPI(c *fiber.Ctx, db *sql.DB) error {
	settings, err := database.GetSettings(db)
	if errors.Is(err, database.ErrSettingsMissing) {
		return fiber.NewError(fiber.StatusNotFound, "Fee schedule not initialized")
	}
	if err != nil {
		log.Printf("Error fetching settings data: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch settings data")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings,
	})
}

// UpdateSettingsAPI merge-patches the fee schedule, creating it on first use.
func UpdateSettingsAPI(c *fiber.Ctx, db *sql.DB) error {
	var updates database.SettingsUpdate
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fee amounts must not be negative")
	}

	if err := database.UpdateSettings(db, updates); err != nil {
		log.Printf("Error updating settings: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update settings")
	}

	settings, err := database.GetSettings(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch settings data")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings,
		"message": "Settings updated successfully",
	})
}
