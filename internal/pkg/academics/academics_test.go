package academics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays(t *testing.T) {
	mon := day(2026, time.January, 5)
	sun := day(2026, time.January, 4)

	// Single-day ranges are inclusive.
	assert.Equal(t, 1, WorkingDays(mon, mon))
	assert.Equal(t, 0, WorkingDays(sun, sun))

	// A full week drops exactly one Sunday.
	assert.Equal(t, 6, WorkingDays(mon, day(2026, time.January, 11)))

	// Reversed range is empty, not negative.
	assert.Equal(t, 0, WorkingDays(mon, day(2026, time.January, 2)))

	// Time-of-day never changes the count.
	late := time.Date(2026, 1, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, WorkingDays(late, mon))
}

func TestAttendance(t *testing.T) {
	start := day(2026, time.January, 5)
	today := day(2026, time.January, 16)

	// Jan 5-16 2026 spans 12 days with one Sunday.
	total, present, pct := Attendance(start, 5, today)
	assert.Equal(t, 11, total)
	assert.Equal(t, 5, present)
	assert.Equal(t, 45.45, pct)

	// More present days than working days clamps at 100.
	_, _, pct = Attendance(start, 50, today)
	assert.Equal(t, 100.0, pct)

	// No elapsed working days means zero percent, not a division error.
	sun := day(2026, time.January, 4)
	total, _, pct = Attendance(sun, 10, sun)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0.0, pct)
}

func TestCGPA(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	assert.Nil(t, CGPA([]*float64{nil, nil, nil}))
	assert.Nil(t, CGPA(nil))

	got := CGPA([]*float64{f(8.0), f(9.0), nil, nil})
	if assert.NotNil(t, got) {
		assert.Equal(t, 8.5, *got)
	}

	// Flat average over entered scores only, rounded to two places.
	got = CGPA([]*float64{f(7.0), f(7.5), f(7.5)})
	if assert.NotNil(t, got) {
		assert.Equal(t, 7.33, *got)
	}

	got = CGPA([]*float64{f(0.0)})
	if assert.NotNil(t, got) {
		assert.Equal(t, 0.0, *got)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 45.45, Round2(45.4545))
	assert.Equal(t, 45.46, Round2(45.456))
	assert.Equal(t, -2.5, Round2(-2.499999999))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(101, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
}
