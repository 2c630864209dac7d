package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Rage-Op/CKA-Backend/app/models"
)

// GetSettings returns the singleton fee schedule. ErrSettingsMissing is
// returned until the schedule has been initialized with a first update.
func GetSettings(db *sql.DB) (*models.Settings, error) {
	s := &models.Settings{}
	query := `SELECT monthly_pg, monthly_kg, monthly_nursery,
		monthly1, monthly2, monthly3, monthly4, monthly5, monthly6,
		transport, diet, exam FROM settings`

	err := db.QueryRow(query).Scan(
		&s.MonthlyPG, &s.MonthlyKG, &s.MonthlyNursery,
		&s.Monthly1, &s.Monthly2, &s.Monthly3, &s.Monthly4, &s.Monthly5, &s.Monthly6,
		&s.Transport, &s.Diet, &s.Exam,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsMissing
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SettingsUpdate carries a merge patch of the fee schedule. Nil fields keep
// their current values.
type SettingsUpdate struct {
	MonthlyPG      *int64 `json:"monthlyPG" validate:"omitempty,gte=0"`
	MonthlyKG      *int64 `json:"monthlyKG" validate:"omitempty,gte=0"`
	MonthlyNursery *int64 `json:"monthlyNursery" validate:"omitempty,gte=0"`
	Monthly1       *int64 `json:"monthly1" validate:"omitempty,gte=0"`
	Monthly2       *int64 `json:"monthly2" validate:"omitempty,gte=0"`
	Monthly3       *int64 `json:"monthly3" validate:"omitempty,gte=0"`
	Monthly4       *int64 `json:"monthly4" validate:"omitempty,gte=0"`
	Monthly5       *int64 `json:"monthly5" validate:"omitempty,gte=0"`
	Monthly6       *int64 `json:"monthly6" validate:"omitempty,gte=0"`
	Transport      *int64 `json:"transport" validate:"omitempty,gte=0"`
	Diet           *int64 `json:"diet" validate:"omitempty,gte=0"`
	Exam           *int64 `json:"exam" validate:"omitempty,gte=0"`
}

// UpdateSettings merge-patches the singleton, creating it on first use.
func UpdateSettings(db *sql.DB, u SettingsUpdate) error {
	columns := []struct {
		name  string
		value *int64
	}{
		{"monthly_pg", u.MonthlyPG},
		{"monthly_kg", u.MonthlyKG},
		{"monthly_nursery", u.MonthlyNursery},
		{"monthly1", u.Monthly1},
		{"monthly2", u.Monthly2},
		{"monthly3", u.Monthly3},
		{"monthly4", u.Monthly4},
		{"monthly5", u.Monthly5},
		{"monthly6", u.Monthly6},
		{"transport", u.Transport},
		{"diet", u.Diet},
		{"exam", u.Exam},
	}

	var names []string
	var placeholders []string
	var sets []string
	var args []interface{}
	argIndex := 1

	for _, col := range columns {
		if col.value == nil {
			continue
		}
		names = append(names, col.name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", argIndex))
		sets = append(sets, fmt.Sprintf("%s = $%d", col.name, argIndex))
		args = append(args, *col.value)
		argIndex++
	}

	if len(names) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO settings (singleton, %s) VALUES (true, %s)
		ON CONFLICT (singleton) DO UPDATE SET %s, updated_at = NOW()`,
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(sets, ", "))

	_, err := db.Exec(query, args...)
	return err
}
