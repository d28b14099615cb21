package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextFirstOfMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"already first", Date(2022, 3, 1), Date(2022, 3, 1)},
		{"mid month", Date(2022, 3, 15), Date(2022, 4, 1)},
		{"last day", Date(2022, 12, 31), Date(2023, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextFirstOfMonth(tt.in))
		})
	}
}

func TestNextSchoolYearStart(t *testing.T) {
	assert.Equal(t, Date(2023, 9, 1), NextSchoolYearStart(Date(2023, 7, 14)))
	assert.Equal(t, Date(2023, 9, 1), NextSchoolYearStart(Date(2023, 9, 20)), "within September stays in the same school year")
	assert.Equal(t, Date(2024, 9, 1), NextSchoolYearStart(Date(2023, 10, 1)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(Date(2022, 1, 15)))
	assert.Equal(t, 28, DaysInMonth(Date(2022, 2, 1)))
	assert.Equal(t, 29, DaysInMonth(Date(2024, 2, 10)), "leap year")
	assert.Equal(t, 30, DaysInMonth(Date(2022, 6, 30)))
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t, Date(2022, 4, 1), AddMonths(Date(2022, 1, 1), 3))
	assert.Equal(t, Date(2023, 2, 1), AddMonths(Date(2022, 12, 1), 2), "crosses year boundary")
	assert.Equal(t, Date(2022, 11, 1), AddMonths(Date(2022, 12, 1), -1))
}

func TestAddWeeks(t *testing.T) {
	assert.Equal(t, Date(2022, 12, 9), AddWeeks(Date(2022, 6, 10), 26))
}

func TestYearsBetween(t *testing.T) {
	birthday := Date(2022, 12, 31)

	assert.Equal(t, 2, YearsBetween(birthday, Date(2025, 12, 30)), "day before third birthday")
	assert.Equal(t, 3, YearsBetween(birthday, Date(2025, 12, 31)), "exactly on third birthday")
	assert.Equal(t, 0, YearsBetween(birthday, Date(2023, 6, 1)))
}
