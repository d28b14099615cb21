// Package calendar provides day-precision date arithmetic for the projection
// engine. All dates are UTC midnight; monthly buckets are keyed by
// first-of-month dates produced by these helpers.
package calendar

import "time"

// Date returns a day-precision UTC date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextFirstOfMonth returns d itself when it already falls on the first of a
// month, otherwise the first of the following month. Used as the billing
// anchor for age-relative events.
func NextFirstOfMonth(d time.Time) time.Time {
	if d.Day() == 1 {
		return Date(d.Year(), d.Month(), 1)
	}
	return Date(d.Year(), d.Month(), 1).AddDate(0, 1, 0)
}

// NextSchoolYearStart returns the first September 1st on or after d's month.
func NextSchoolYearStart(d time.Time) time.Time {
	cur := Date(d.Year(), d.Month(), 1)
	for cur.Month() != time.September {
		cur = cur.AddDate(0, 1, 0)
	}
	return cur
}

// DaysInMonth returns the number of calendar days in d's month.
func DaysInMonth(d time.Time) int {
	first := Date(d.Year(), d.Month(), 1)
	return first.AddDate(0, 1, -1).Day()
}

// AddMonths advances d by n calendar months. Callers keep engine dates on the
// first of the month, so time.AddDate's end-of-month normalization never
// fires.
func AddMonths(d time.Time, n int) time.Time {
	return d.AddDate(0, n, 0)
}

// AddYears advances d by n calendar years.
func AddYears(d time.Time, n int) time.Time {
	return d.AddDate(n, 0, 0)
}

// AddWeeks advances d by n weeks.
func AddWeeks(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, 7*n)
}

// YearsBetween returns the number of whole years elapsed from a birthday to a
// later date, i.e. the age in years at that date.
func YearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := Date(from.Year()+years, from.Month(), from.Day())
	if to.Before(anniversary) {
		years--
	}
	return years
}
