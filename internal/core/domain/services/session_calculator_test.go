package services_test

import (
	"testing"
	"time"

	"ordersvc/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSessionCalculator_TotalSessions(t *testing.T) {
	calc := services.NewSessionCalculator()

	tests := []struct {
		name      string
		frequency int
		start     time.Time
		finish    time.Time
		want      int
	}{
		{"two weeks twice a week", 2, day(2024, 1, 1), day(2024, 1, 15), 4},
		{"same day", 5, day(2024, 3, 10), day(2024, 3, 10), 0},
		{"one week daily", 7, day(2024, 1, 1), day(2024, 1, 8), 7},
		{"ten days three times a week", 3, day(2024, 1, 1), day(2024, 1, 11), 4},
		{"half week rounds up", 1, day(2024, 1, 1), day(2024, 1, 5), 1},
		{"month daily", 7, day(2024, 2, 1), day(2024, 3, 2), 30},
		{"reversed window is negative", 2, day(2024, 1, 15), day(2024, 1, 1), -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.TotalSessions(tt.frequency, tt.start, tt.finish))
		})
	}
}

func TestSessionCalculator_NonNegativeAndMonotonic(t *testing.T) {
	calc := services.NewSessionCalculator()
	start := day(2024, 1, 1)

	for frequency := 1; frequency <= 7; frequency++ {
		prev := 0
		for days := 0; days <= 120; days++ {
			got := calc.TotalSessions(frequency, start, start.AddDate(0, 0, days))
			assert.GreaterOrEqual(t, got, 0)
			assert.GreaterOrEqual(t, got, prev, "frequency %d, days %d", frequency, days)
			prev = got
		}
	}
}

func TestDaysBetween(t *testing.T) {
	t.Run("rounds partial days", func(t *testing.T) {
		start := day(2024, 1, 1)

		assert.Equal(t, int64(1), services.DaysBetween(start, start.Add(13*time.Hour)))
		assert.Equal(t, int64(0), services.DaysBetween(start, start.Add(11*time.Hour)))
	})

	t.Run("ignores time zones", func(t *testing.T) {
		loc := time.FixedZone("UTC-3", -3*60*60)
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
		finish := day(2024, 1, 8).Add(3 * time.Hour)

		assert.Equal(t, int64(7), services.DaysBetween(start, finish))
	})
}
