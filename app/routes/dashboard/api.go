package dashboard

import (
	"database/sql"
	"log"

	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/Rage-Op/CKA-Backend/app/services"
	"github.com/gofiber/fiber/v2"
)

// GetDashboardStatsAPI returns school-wide totals, the last debit run and the
// latest backup snapshot.
func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		log.Printf("Error fetching dashboard stats: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard statistics")
	}

	response := fiber.Map{
		"success": true,
		"data":    stats,
	}

	if debitLog, err := database.GetDebitLog(db); err == nil && debitLog.LastDebit != "" {
		response["last_debit"] = debitLog.LastDebit
		if today, err := services.TodayBS(); err == nil {
			if days, err := services.ApproxDaysBetween(debitLog.LastDebit, today); err == nil {
				response["days_since_last_debit"] = days
			}
		}
	}

	if info, err := database.GetLatestBackupInfo(db); err == nil && info != nil {
		response["last_backup"] = info
	}

	return c.JSON(response)
}
