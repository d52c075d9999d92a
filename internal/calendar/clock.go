package calendar

import "time"

// Clock supplies "today". It is read on every check, never cached.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host wall clock in local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// FixedClock always reports the given day (at noon, local time).
func FixedClock(d Date) Clock {
	t := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.Local)
	return ClockFunc(func() time.Time { return t })
}
