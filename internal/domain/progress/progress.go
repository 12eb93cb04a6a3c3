// Package progress computes the percentages shown on progress bars and charts.
package progress

import "math"

const full = 100.0

// Donation returns how far raised is towards goal, in percent, clamped to [0, 100].
// A non-positive goal yields 0.
func Donation(raised, goal int64) float64 {
	if goal <= 0 || raised <= 0 {
		return 0
	}
	return math.Min(float64(raised)*full/float64(goal), full)
}

// Registration returns attendees as a percentage of capacity.
// The value is not clamped: an over-subscribed event reports more than 100.
// A non-positive capacity yields 0.
func Registration(attendees, capacity int) float64 {
	if capacity <= 0 || attendees <= 0 {
		return 0
	}
	return float64(attendees) * full / float64(capacity)
}

// Share returns value as a percentage of total with one decimal place.
func Share(value, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(value)*full*10/float64(total)) / 10
}

// Round rounds a percentage for display (half away from zero).
func Round(p float64) int {
	return int(math.Round(p))
}
