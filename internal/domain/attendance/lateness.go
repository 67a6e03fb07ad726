package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultShiftStart = "09:00"
	// GraceMinutes is the tolerance after shift start before minutes count as late.
	GraceMinutes = 5
)

type Option func(*Calculator)

// WithClock sets the source of "today" used to anchor both instants.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the zone in which wall-clock hours and minutes are read.
func WithLocation(loc *time.Location) Option {
	return func(c *Calculator) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// Calculator measures lateness of check-ins against a shift start.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	defaultShiftStart string
	now               func() time.Time
	loc               *time.Location
}

func NewCalculator(defaultShiftStart string, opts ...Option) *Calculator {
	if strings.TrimSpace(defaultShiftStart) == "" {
		defaultShiftStart = DefaultShiftStart
	}
	c := &Calculator{
		defaultShiftStart: defaultShiftStart,
		now:               time.Now,
		loc:               time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) DefaultShiftStart() string {
	return c.defaultShiftStart
}

func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Lateness returns the minutes by which the check-in at logTimeSeconds
// exceeds the shift start, or 0 when within the grace period.
//
// Only the time of day is compared: both instants are moved onto today's
// date, so a check-in from another day is measured as if it happened today.
func (c *Calculator) Lateness(logTimeSeconds int64, shiftStart string) int {
	if shiftStart == "" {
		shiftStart = c.defaultShiftStart
	}
	clock, ok := ParseClock(shiftStart)
	if !ok {
		return 0
	}

	today := c.now().In(c.loc)
	year, month, day := today.Date()
	shiftAt := time.Date(year, month, day, clock.Hour, clock.Minute, 0, 0, c.loc)

	logged := time.Unix(logTimeSeconds, 0).In(c.loc)
	loggedAt := time.Date(year, month, day, logged.Hour(), logged.Minute(), 0, 0, c.loc)

	diff := floorMinutes(loggedAt.Sub(shiftAt))
	if diff > GraceMinutes {
		return diff
	}
	return 0
}

func floorMinutes(d time.Duration) int {
	minutes := d / time.Minute
	if d%time.Minute < 0 {
		minutes--
	}
	return int(minutes)
}

// Clock is a wall-clock hour and minute. Values are not range checked;
// time.Date normalizes overflow into the next hour or day.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClock reads an "HH:MM" string. Parts after the minute are ignored,
// blank parts read as zero and a missing minute part fails.
func ParseClock(raw string) (Clock, bool) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return Clock{}, false
	}
	hour, ok := parseClockPart(parts[0])
	if !ok {
		return Clock{}, false
	}
	minute, ok := parseClockPart(parts[1])
	if !ok {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}

func parseClockPart(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
