package services

import (
	"math"
	"time"
)

const millisecondsPerDay = 24 * 60 * 60 * 1000

// SessionCalculator derives the number of treatment sessions that fit into a
// schedule window at a given weekly frequency.
//
// The formula is
//
//	round(round(daysBetween(start, finish)) / 7 * frequency)
//
// where daysBetween is the millisecond distance divided by one day. Both
// roundings are half away from zero.
//
// The calculator is total: a finish date before the start date yields a
// non-positive count. Rejecting such windows is the job of the OrderDetail
// aggregate.
//
// Example:
//
//	calc := NewSessionCalculator()
//	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
//	finish := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
//	calc.TotalSessions(2, start, finish) // 4
type SessionCalculator struct{}

// NewSessionCalculator creates a session calculator.
func NewSessionCalculator() SessionCalculator {
	return SessionCalculator{}
}

// TotalSessions returns the session count for frequency sessions per week
// between start and finish.
func (SessionCalculator) TotalSessions(frequency int, start, finish time.Time) int {
	days := DaysBetween(start, finish)
	return int(math.Round(float64(days) / 7 * float64(frequency)))
}

// DaysBetween returns the whole number of days from start to finish.
func DaysBetween(start, finish time.Time) int64 {
	ms := finish.UnixMilli() - start.UnixMilli()
	return int64(math.Round(float64(ms) / millisecondsPerDay))
}
