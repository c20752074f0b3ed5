// internal/dues/interest_test.go
package dues

import (
	"testing"
	"time"

	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestMonthsOverdue(t *testing.T) {
	tests := []struct {
		name  string
		dueOn string
		now   time.Time
		want  int64
	}{
		{"before due date", "2025-01-10", date(2025, 1, 5), 0},
		{"same month after due day", "2025-01-10", date(2025, 1, 31), 0},
		{"next month, day ignored", "2025-01-31", date(2025, 2, 1), 1},
		{"two months", "2025-01-10", date(2025, 3, 5), 2},
		{"across a year boundary", "2024-11-10", date(2025, 2, 1), 3},
		{"unparseable date", "not-a-date", date(2025, 1, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsOverdue(tt.dueOn, tt.now); got != tt.want {
				t.Errorf("MonthsOverdue(%q, %v) = %d, want %d", tt.dueOn, tt.now, got, tt.want)
			}
		})
	}
}

func TestInterestCents(t *testing.T) {
	tests := []struct {
		name       string
		totalCents int64
		rateBps    int64
		months     int64
		want       int64
	}{
		{"two months at 10%", 800, 1000, 2, 160},
		{"one month at 10%", 800, 1000, 1, 80},
		{"zero months", 800, 1000, 0, 0},
		{"zero rate", 800, 0, 2, 0},
		{"rounds half up", 333, 50, 1, 2}, // 1.665 cents
		{"rounds down below half", 100, 49, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InterestCents(tt.totalCents, tt.rateBps, tt.months); got != tt.want {
				t.Errorf("InterestCents(%d, %d, %d) = %d, want %d",
					tt.totalCents, tt.rateBps, tt.months, got, tt.want)
			}
		})
	}
}

func TestTotalPayable(t *testing.T) {
	d := dbgen.DuesPeriod{TotalCents: 800, DueOn: "2025-01-10"}

	if got := TotalPayable(d, 1000, date(2025, 3, 5)); got != 960 {
		t.Errorf("two months overdue: got %d, want 960", got)
	}
	if got := TotalPayable(d, 1000, date(2025, 1, 5)); got != 800 {
		t.Errorf("not yet due: got %d, want 800", got)
	}
}

func TestInterestMonotonicWhileUnpaid(t *testing.T) {
	d := dbgen.DuesPeriod{TotalCents: 800, DueOn: "2025-01-10"}

	prev := int64(-1)
	for m := time.Month(1); m <= 12; m++ {
		got := Interest(d, 1000, date(2025, m, 15))
		if got < prev {
			t.Fatalf("interest decreased from %d to %d at month %v", prev, got, m)
		}
		prev = got
	}
}
