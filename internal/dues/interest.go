// internal/dues/interest.go

// Package dues implements the monthly dues engine: period emission
// per household, late-payment interest, and delinquency purging.
package dues

import (
	"time"

	dbgen "github.com/tvidela/clubcancha/internal/db/generated"
)

// MonthsOverdue counts whole calendar months between the due date and
// now, by (year*12 + month) difference. Day-of-month is deliberately
// ignored: a payment due January 31st accrues one month of interest
// on February 1st. This matches how the club has always billed.
func MonthsOverdue(dueOn string, now time.Time) int64 {
	due, err := time.ParseInLocation("2006-01-02", dueOn, time.Local)
	if err != nil {
		return 0
	}
	months := int64(now.Year()*12+int(now.Month())) - int64(due.Year()*12+int(due.Month()))
	if months < 0 {
		return 0
	}
	return months
}

// InterestCents applies a simple (non-compounding) monthly rate given
// in basis points, rounding half-up. Integer arithmetic throughout.
func InterestCents(totalCents, rateBps, months int64) int64 {
	if totalCents <= 0 || rateBps <= 0 || months <= 0 {
		return 0
	}
	return (totalCents*rateBps*months + 5000) / 10000
}

// Interest computes the interest accrued on an unpaid period. Paid
// periods accrue nothing; callers check payment state.
func Interest(d dbgen.DuesPeriod, rateBps int64, now time.Time) int64 {
	return InterestCents(d.TotalCents, rateBps, MonthsOverdue(d.DueOn, now))
}

// TotalPayable is the amount settling the period today: the frozen
// total plus accrued interest.
func TotalPayable(d dbgen.DuesPeriod, rateBps int64, now time.Time) int64 {
	return d.TotalCents + Interest(d, rateBps, now)
}
