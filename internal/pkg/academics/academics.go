// Package academics holds the calendar, attendance and CGPA arithmetic for
// student records. Everything here is a pure function of its inputs; the
// attendance figures in particular are recomputed on every read and never
// persisted, so they drift day to day without any write.
package academics

import (
	"math"
	"time"
)

// WorkingDays counts the days in the inclusive range [start, end] that are
// not Sundays. Saturdays and holidays count as working days; the college runs
// with a single weekly rest day and no holiday calendar. Returns 0 when end
// precedes start.
func WorkingDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0
	}

	total := int(end.Sub(start).Hours()/24) + 1
	sundays := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			sundays++
		}
	}
	return total - sundays
}

// Attendance derives the attendance triple for a semester that began at
// start, as of today. The percentage is rounded to two decimal places and
// clamped to [0, 100]; it is 0 when no working day has elapsed.
func Attendance(start time.Time, presentDays int, today time.Time) (total, present int, pct float64) {
	total = WorkingDays(start, today)
	present = presentDays

	if total > 0 {
		pct = Round2(float64(present) / float64(total) * 100.0)
	}
	pct = Clamp(pct, 0.0, 100.0)
	return total, present, pct
}

// CGPA averages the non-nil semester scores, rounded to two decimal places.
// Returns nil when no semester has a score yet. Flat average, no credit
// weighting.
func CGPA(sems []*float64) *float64 {
	var sum float64
	var n int
	for _, v := range sems {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := Round2(sum / float64(n))
	return &avg
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
