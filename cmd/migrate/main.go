package main

import (
	"log"

	"github.com/Rage-Op/CKA-Backend/app/config"
	"github.com/Rage-Op/CKA-Backend/app/database"
)

func main() {
	log.Println("Starting manual migration...")

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Manual migration completed successfully!")
}
