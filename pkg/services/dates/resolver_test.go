package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	now := time.Date(2025, 7, 18, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		start, end    *time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "defaults to current month",
			expectedStart: day(2025, 7, 1),
			expectedEnd:   day(2025, 7, 31),
		},
		{
			name:          "explicit bounds used verbatim",
			start:         ptr(day(2025, 3, 10)),
			end:           ptr(day(2025, 4, 2)),
			expectedStart: day(2025, 3, 10),
			expectedEnd:   day(2025, 4, 2),
		},
		{
			name:          "missing end falls back to month end",
			start:         ptr(day(2025, 7, 10)),
			expectedStart: day(2025, 7, 10),
			expectedEnd:   day(2025, 7, 31),
		},
		{
			name:          "inverted range is kept as-is",
			start:         ptr(day(2025, 7, 20)),
			end:           ptr(day(2025, 7, 10)),
			expectedStart: day(2025, 7, 20),
			expectedEnd:   day(2025, 7, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Resolve(tt.start, tt.end, now)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name           string
		input          time.Time
		expectedMonday time.Time
	}{
		{name: "monday maps to itself", input: day(2025, 7, 14), expectedMonday: day(2025, 7, 14)},
		{name: "wednesday maps back to monday", input: day(2025, 7, 16), expectedMonday: day(2025, 7, 14)},
		{name: "sunday belongs to the previous monday", input: day(2025, 7, 20), expectedMonday: day(2025, 7, 14)},
		{name: "week spanning a month boundary", input: day(2025, 7, 1), expectedMonday: day(2025, 6, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekOf(tt.input)
			assert.Equal(t, tt.expectedMonday, start)
			assert.Equal(t, start.AddDate(0, 0, 6), end, "week end must be monday+6")
		})
	}
}

func TestMonthRange(t *testing.T) {
	t.Run("february of a leap year", func(t *testing.T) {
		start, end := MonthRange(day(2024, 2, 15))
		assert.Equal(t, day(2024, 2, 1), start)
		assert.Equal(t, day(2024, 2, 29), end)
	})

	t.Run("december", func(t *testing.T) {
		start, end := MonthRange(day(2025, 12, 3))
		assert.Equal(t, day(2025, 12, 1), start)
		assert.Equal(t, day(2025, 12, 31), end)
	})
}

func TestLastNDays(t *testing.T) {
	start, end := LastNDays(day(2025, 7, 18), 28)
	assert.Equal(t, day(2025, 6, 20), start)
	assert.Equal(t, day(2025, 7, 18), end)
}

func ptr(t time.Time) *time.Time { return &t }
