package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestCalculator() *Calculator {
	return NewCalculator(DefaultShiftStart,
		WithClock(func() time.Time { return fixedNow }),
		WithLocation(time.UTC),
	)
}

func at(hour, minute int) int64 {
	return time.Date(fixedNow.Year(), fixedNow.Month(), fixedNow.Day(), hour, minute, 0, 0, time.UTC).Unix()
}

func TestLatenessOnTimeAndEarly(t *testing.T) {
	calc := newTestCalculator()
	assert.Equal(t, 0, calc.Lateness(at(9, 0), "09:00"))
	assert.Equal(t, 0, calc.Lateness(at(8, 50), "09:00"))
}

func TestLatenessGracePeriod(t *testing.T) {
	calc := newTestCalculator()
	for minute := 0; minute <= GraceMinutes; minute++ {
		assert.Equal(t, 0, calc.Lateness(at(9, minute), "09:00"), "minute %d", minute)
	}
	assert.Equal(t, 6, calc.Lateness(at(9, 6), "09:00"))
	assert.Equal(t, 30, calc.Lateness(at(9, 30), "09:00"))
	assert.Equal(t, 125, calc.Lateness(at(11, 5), "09:00"))
}

func TestLatenessDefaultShiftStart(t *testing.T) {
	calc := newTestCalculator()
	assert.Equal(t, calc.Lateness(at(9, 30), "09:00"), calc.Lateness(at(9, 30), ""))
	assert.Equal(t, 30, calc.Lateness(at(9, 30), ""))
}

func TestLatenessConfiguredDefault(t *testing.T) {
	calc := NewCalculator("08:00", WithClock(func() time.Time { return fixedNow }), WithLocation(time.UTC))
	assert.Equal(t, 90, calc.Lateness(at(9, 30), ""))
	assert.Equal(t, "08:00", calc.DefaultShiftStart())

	blank := NewCalculator("  ")
	assert.Equal(t, DefaultShiftStart, blank.DefaultShiftStart())
}

func TestLatenessDifferentShiftStart(t *testing.T) {
	calc := newTestCalculator()
	assert.Equal(t, 30, calc.Lateness(at(10, 30), "10:00"))
	assert.Equal(t, 0, calc.Lateness(at(9, 30), "10:00"))
}

func TestLatenessIgnoresLogDateAndSeconds(t *testing.T) {
	calc := newTestCalculator()
	lastYear := time.Date(2024, 1, 2, 9, 45, 59, 0, time.UTC).Unix()
	assert.Equal(t, 45, calc.Lateness(lastYear, "09:00"))
}

func TestLatenessReadsWallClockInLocation(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)
	calc := NewCalculator(DefaultShiftStart, WithClock(func() time.Time { return fixedNow }), WithLocation(zone))
	// 06:20 UTC is 09:20 at UTC+3.
	assert.Equal(t, 20, calc.Lateness(at(6, 20), ""))
	assert.Same(t, zone, calc.Location())
}

func TestLatenessInvalidShiftStart(t *testing.T) {
	calc := newTestCalculator()
	assert.Equal(t, 0, calc.Lateness(at(10, 0), "nine"))
	assert.Equal(t, 0, calc.Lateness(at(10, 0), "09"))
	assert.Equal(t, 0, calc.Lateness(at(10, 0), "09:xx"))
}

func TestLatenessShiftPastMidnightNormalizes(t *testing.T) {
	calc := newTestCalculator()
	// 25:00 lands on tomorrow 01:00, so every check-in today is early.
	assert.Equal(t, 0, calc.Lateness(at(23, 59), "25:00"))
	// 08:75 is 09:15.
	assert.Equal(t, 15, calc.Lateness(at(9, 30), "08:75"))
}

func TestParseClock(t *testing.T) {
	clock, ok := ParseClock("09:30")
	require.True(t, ok)
	assert.Equal(t, Clock{Hour: 9, Minute: 30}, clock)
	assert.Equal(t, "09:30", clock.String())

	clock, ok = ParseClock(" 7 : 05 :59")
	require.True(t, ok)
	assert.Equal(t, Clock{Hour: 7, Minute: 5}, clock)

	clock, ok = ParseClock("10:")
	require.True(t, ok)
	assert.Equal(t, Clock{Hour: 10}, clock)

	_, ok = ParseClock("10")
	assert.False(t, ok)
	_, ok = ParseClock("a:b")
	assert.False(t, ok)
}
