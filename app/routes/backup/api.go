package backup

import (
	"database/sql"
	"log"

	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/Rage-Op/CKA-Backend/app/services"
	"github.com/gofiber/fiber/v2"
)

// RunBackupAPI replaces the backup collection with a snapshot of all
// students.
func RunBackupAPI(c *fiber.Ctx, db *sql.DB) error {
	log.Println("Backup requested")

	info, err := services.BackupStudents(db)
	if err != nil {
		log.Printf("Error during backup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Backup failed")
	}

	log.Printf("Backup %s successful (%d students)", info.SnapshotID, info.Students)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    info,
		"message": "Backup successful",
	})
}

// GetLatestBackupAPI describes the current snapshot, if any.
func GetLatestBackupAPI(c *fiber.Ctx, db *sql.DB) error {
	info, err := database.GetLatestBackupInfo(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch backup info")
	}
	if info == nil {
		return fiber.NewError(fiber.StatusNotFound, "No backup has been taken yet")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    info,
	})
}
