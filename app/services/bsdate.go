package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/opensource-nepal/go-nepali/nepalitime"
)

// Bikram Sambat calendar support. All ledger dates and the debit log use BS
// dates formatted as YYYY/MM/DD; outside this file the string is treated as
// opaque. Conversion is delegated to go-nepali, which carries the BS
// month-length tables.

// ToBS converts a Gregorian time to a BS date string (YYYY/MM/DD).
func ToBS(t time.Time) (string, error) {
	np, err := nepalitime.FromEnglishTime(t)
	if err != nil {
		return "", fmt.Errorf("date %s is outside the supported BS range: %w",
			t.Format("2006-01-02"), err)
	}
	return fmt.Sprintf("%04d/%02d/%02d", np.Year(), np.Month(), np.Day()), nil
}

// TodayBS returns today's BS date.
func TodayBS() (string, error) {
	return ToBS(time.Now())
}

// ApproxDayNumber flattens a BS date string with the coarse 365/30/1
// weighting used for "days since last debit" display. Not calendar-aware.
func ApproxDayNumber(date string) (int, error) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed BS date %q", date)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("malformed BS date %q", date)
		}
		nums[i] = n
	}
	return nums[0]*365 + nums[1]*30 + nums[2], nil
}

// ApproxDaysBetween estimates the days elapsed from one BS date to another.
func ApproxDaysBetween(from, to string) (int, error) {
	a, err := ApproxDayNumber(from)
	if err != nil {
		return 0, err
	}
	b, err := ApproxDayNumber(to)
	if err != nil {
		return 0, err
	}
	return b - a, nil
}
