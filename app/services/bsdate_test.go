package services_test

import (
	"testing"
	"time"

	"github.com/Rage-Op/CKA-Backend/app/services"
)

func TestToBS_NewYearDates(t *testing.T) {
	// Baisakh 1 fell on 14 April in 2023 AD and 13 April in 2024 AD.
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2023, time.April, 14, 0, 0, 0, 0, time.UTC), "2080/01/01"},
		{time.Date(2024, time.April, 13, 0, 0, 0, 0, time.UTC), "2081/01/01"},
	}
	for _, tc := range cases {
		got, err := services.ToBS(tc.in)
		if err != nil {
			t.Fatalf("ToBS(%s): %v", tc.in.Format("2006-01-02"), err)
		}
		if got != tc.want {
			t.Fatalf("ToBS(%s) = %q, want %q", tc.in.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestToBS_MonthRollover(t *testing.T) {
	// Baisakh 2080 has 31 days, so 15 May 2023 is 1 Jestha.
	got, err := services.ToBS(time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ToBS: %v", err)
	}
	if got != "2080/02/01" {
		t.Fatalf("ToBS(2023-05-15) = %q, want 2080/02/01", got)
	}
}

func TestToBS_BeforeRange(t *testing.T) {
	if _, err := services.ToBS(time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Fatal("expected error for a date before the supported range")
	}
}

func TestApproxDayNumber(t *testing.T) {
	got, err := services.ApproxDayNumber("2081/03/15")
	if err != nil {
		t.Fatalf("ApproxDayNumber: %v", err)
	}
	want := 2081*365 + 3*30 + 15
	if got != want {
		t.Fatalf("ApproxDayNumber = %d, want %d", got, want)
	}
}

func TestApproxDayNumber_Malformed(t *testing.T) {
	for _, date := range []string{"", "2081/03", "2081-03-15", "y/m/d"} {
		if _, err := services.ApproxDayNumber(date); err == nil {
			t.Fatalf("expected error for %q", date)
		}
	}
}

func TestApproxDaysBetween(t *testing.T) {
	// One BS month apart counts as 30 days under the coarse weighting,
	// whatever the actual month length.
	got, err := services.ApproxDaysBetween("2081/02/15", "2081/03/15")
	if err != nil {
		t.Fatalf("ApproxDaysBetween: %v", err)
	}
	if got != 30 {
		t.Fatalf("ApproxDaysBetween = %d, want 30", got)
	}
}
