package debit

import (
	"database/sql"
	"errors"
	"log"

	"github.com/Rage-Op/CKA-Backend/app/config"
	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/Rage-Op/CKA-Backend/app/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// DebitRequest triggers one batch debit cycle. When safe mode is on the
// operator password must be confirmed before anything runs.
type DebitRequest struct {
	Exam     bool   `json:"exam"`
	Password string `json:"password"`
}

// RunDebitAPI applies one fee cycle's charge to every student and records
// that the cycle ran. Partial failure is reported per student; committed
// siblings are not rolled back.
func RunDebitAPI(c *fiber.Ctx, db *sql.DB) error {
	var req DebitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if config.AppConfig.SafeMode {
		hash := config.AppConfig.DebitPasswordHash
		if hash == "" {
			return fiber.NewError(fiber.StatusInternalServerError,
				"Safe mode is on but no debit password is configured")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Invalid password")
		}
	}

	date, err := services.TodayBS()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not determine debit date")
	}

	result, err := services.RunDebit(services.NewDebitStore(db), date, req.Exam)
	if errors.Is(err, database.ErrSettingsMissing) {
		return fiber.NewError(fiber.StatusInternalServerError, "Fee schedule not initialized")
	}
	if err != nil {
		log.Printf("Error processing debit: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update students")
	}

	status := fiber.StatusOK
	success := true
	if len(result.Failed) > 0 || !result.LogWritten {
		status = fiber.StatusInternalServerError
		success = false
	}
	return c.Status(status).JSON(fiber.Map{
		"success": success,
		"data":    result,
	})
}

// GetDebitLogAPI returns the last-debit marker plus the approximate number of
// days since that run.
func GetDebitLogAPI(c *fiber.Ctx, db *sql.DB) error {
	debitLog, err := database.GetDebitLog(db)
	if err != nil {
		log.Printf("Error fetching debit log data: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch debit log")
	}

	response := fiber.Map{
		"success": true,
		"data":    debitLog,
	}

	if debitLog.LastDebit != "" {
		if today, err := services.TodayBS(); err == nil {
			if days, err := services.ApproxDaysBetween(debitLog.LastDebit, today); err == nil {
				response["days_since_last_debit"] = days
			}
		}
	}
	return c.JSON(response)
}

// DebitLogUpdateRequest is an operator correction of the last-debit marker.
type DebitLogUpdateRequest struct {
	LastDebit string `json:"lastDebit"`
}

// UpdateDebitLogAPI overwrites the last-debit marker. Normally the batch
// engine maintains it; this exists for manual corrections.
func UpdateDebitLogAPI(c *fiber.Ctx, db *sql.DB) error {
	var req DebitLogUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := database.UpdateDebitLog(db, req.LastDebit); err != nil {
		log.Printf("Error updating debit log: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update debit log")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Debit log updated successfully",
	})
}

// GetDebitRunsAPI returns the most recent batch run audit rows.
func GetDebitRunsAPI(c *fiber.Ctx, db *sql.DB) error {
	limit := c.QueryInt("limit", 20)
	runs, err := database.GetDebitRuns(db, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch debit runs")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    runs,
		"count":   len(runs),
	})
}

// GetBSDateAPI returns today's date in the BS calendar.
func GetBSDateAPI(c *fiber.Ctx) error {
	date, err := services.TodayBS()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not determine BS date")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    date,
	})
}
