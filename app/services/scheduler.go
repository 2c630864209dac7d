package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler. It takes an automatic
// snapshot of the students collection once a day at the configured hour.
func StartScheduler(db *sql.DB, backupHour int) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			if now.Hour() == backupHour && now.Minute() == 0 {
				log.Printf("Triggering scheduled backup [%02d:00]...", backupHour)

				info, err := BackupStudents(db)
				if err != nil {
					log.Printf("Error taking scheduled backup: %v", err)
					continue
				}
				log.Printf("Scheduled backup %s completed (%d students)", info.SnapshotID, info.Students)
			}
		}
	}()
}
