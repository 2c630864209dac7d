package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB                *sql.DB
	Port              string
	SafeMode          bool
	DebitPasswordHash string
	BackupHour        int
}

var AppConfig *Config

// LoadEnv loads a .env file if one is present, otherwise the process
// environment is used as-is.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func InitDB() {
	var psqlInfo string

	if url := os.Getenv("DATABASE_URL"); url != "" {
		psqlInfo = url
	} else {
		host := getEnv("DB_HOST", "localhost")
		port := getEnv("DB_PORT", "5432")
		user := getEnv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := getEnv("DB_NAME", "cka")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable connect_timeout=10",
			host, port, user, dbname)
		if password != "" {
			psqlInfo += " password=" + password
		}
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	backupHour, err := strconv.Atoi(getEnv("BACKUP_HOUR", "20"))
	if err != nil || backupHour < 0 || backupHour > 23 {
		log.Println("Invalid BACKUP_HOUR, falling back to 20")
		backupHour = 20
	}

	AppConfig = &Config{
		DB:                db,
		Port:              getEnv("PORT", "3000"),
		SafeMode:          getEnv("SAFE_MODE", "true") == "true",
		DebitPasswordHash: os.Getenv("DEBIT_PASSWORD_HASH"),
		BackupHour:        backupHour,
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
