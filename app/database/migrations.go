package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema and seeds the singleton records. Every
// statement is idempotent so this is safe to run at each startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			student_id     INTEGER PRIMARY KEY,
			name           TEXT NOT NULL,
			gender         TEXT NOT NULL DEFAULT '',
			class          TEXT NOT NULL,
			dob            TEXT NOT NULL DEFAULT '',
			admit_date     TEXT NOT NULL DEFAULT '',
			father_name    TEXT NOT NULL DEFAULT '',
			mother_name    TEXT NOT NULL DEFAULT '',
			contact        TEXT NOT NULL DEFAULT '',
			address        TEXT NOT NULL DEFAULT '',
			transport      BOOLEAN NOT NULL DEFAULT false,
			diet           BOOLEAN NOT NULL DEFAULT false,
			monthly_fees   BIGINT NOT NULL DEFAULT 0,
			transport_fees BIGINT NOT NULL DEFAULT 0,
			diet_fees      BIGINT NOT NULL DEFAULT 0,
			exam_fees      BIGINT NOT NULL DEFAULT 0,
			debit_amount   JSONB NOT NULL DEFAULT '[]',
			credit_amount  JSONB NOT NULL DEFAULT '[]',
			fees_debit     BIGINT NOT NULL DEFAULT 0,
			fees_credit    BIGINT NOT NULL DEFAULT 0,
			photo          TEXT NOT NULL DEFAULT '',
			ledger_version INTEGER NOT NULL DEFAULT 0,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// The CHECK on the constant key column enforces the singleton.
		`CREATE TABLE IF NOT EXISTS settings (
			singleton       BOOLEAN PRIMARY KEY DEFAULT true CHECK (singleton),
			monthly_pg      BIGINT NOT NULL DEFAULT 0,
			monthly_kg      BIGINT NOT NULL DEFAULT 0,
			monthly_nursery BIGINT NOT NULL DEFAULT 0,
			monthly1        BIGINT NOT NULL DEFAULT 0,
			monthly2        BIGINT NOT NULL DEFAULT 0,
			monthly3        BIGINT NOT NULL DEFAULT 0,
			monthly4        BIGINT NOT NULL DEFAULT 0,
			monthly5        BIGINT NOT NULL DEFAULT 0,
			monthly6        BIGINT NOT NULL DEFAULT 0,
			transport       BIGINT NOT NULL DEFAULT 0,
			diet            BIGINT NOT NULL DEFAULT 0,
			exam            BIGINT NOT NULL DEFAULT 0,
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS debit_log (
			singleton  BOOLEAN PRIMARY KEY DEFAULT true CHECK (singleton),
			last_debit TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS debit_runs (
			id              UUID PRIMARY KEY,
			run_date        TEXT NOT NULL,
			exam_applied    BOOLEAN NOT NULL,
			students_total  INTEGER NOT NULL,
			students_failed INTEGER NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS backup_students (
			snapshot_id    UUID NOT NULL,
			taken_at       TIMESTAMPTZ NOT NULL,
			student_id     INTEGER NOT NULL,
			name           TEXT NOT NULL,
			gender         TEXT NOT NULL,
			class          TEXT NOT NULL,
			dob            TEXT NOT NULL,
			admit_date     TEXT NOT NULL,
			father_name    TEXT NOT NULL,
			mother_name    TEXT NOT NULL,
			contact        TEXT NOT NULL,
			address        TEXT NOT NULL,
			transport      BOOLEAN NOT NULL,
			diet           BOOLEAN NOT NULL,
			monthly_fees   BIGINT NOT NULL,
			transport_fees BIGINT NOT NULL,
			diet_fees      BIGINT NOT NULL,
			exam_fees      BIGINT NOT NULL,
			debit_amount   JSONB NOT NULL,
			credit_amount  JSONB NOT NULL,
			fees_debit     BIGINT NOT NULL,
			fees_credit    BIGINT NOT NULL,
			photo          TEXT NOT NULL
		)`,

		// The debit log always has its row; settings are created on the
		// first PATCH so that fee-dependent operations can detect an
		// uninitialized schedule and refuse to run.
		`INSERT INTO debit_log (singleton) VALUES (true) ON CONFLICT DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
