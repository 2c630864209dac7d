package database

import "database/sql"

// DashboardStats aggregates the figures shown on the dashboard page.
type DashboardStats struct {
	TotalStudents  int   `json:"total_students"`
	TransportUsers int   `json:"transport_users"`
	DietUsers      int   `json:"diet_users"`
	TotalDebit     int64 `json:"total_debit"`
	TotalCredit    int64 `json:"total_credit"`
	TotalDue       int64 `json:"total_due"`
}

// GetDashboardStats computes school-wide totals across all students.
func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE transport),
			COUNT(*) FILTER (WHERE diet),
			COALESCE(SUM(fees_debit), 0),
			COALESCE(SUM(fees_credit), 0)
		FROM students`

	err := db.QueryRow(query).Scan(
		&stats.TotalStudents, &stats.TransportUsers, &stats.DietUsers,
		&stats.TotalDebit, &stats.TotalCredit,
	)
	if err != nil {
		return nil, err
	}
	stats.TotalDue = stats.TotalDebit - stats.TotalCredit
	return stats, nil
}
