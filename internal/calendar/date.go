package calendar

import (
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Date is a calendar day in the host-local calendar. Months are 1-indexed.
// The zero value means "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// labelLayout renders like "Mon Jun 03 2024".
const labelLayout = "Mon Jan 02 2006"

func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names a real calendar day.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// String returns the persisted form "Y-M-D" (no zero padding), or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return strconv.Itoa(d.Year) + "-" + strconv.Itoa(int(d.Month)) + "-" + strconv.Itoa(d.Day)
}

// Label is the human-readable form, or "" for the zero Date.
func (d Date) Label() string {
	if d.IsZero() {
		return ""
	}
	return d.Time(time.Local).Format(labelLayout)
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses the persisted "YYYY-M-D" form. Zero padding is accepted
// but not required.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, &ParseError{Value: s, Reason: "expected YYYY-M-D"}
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, &ParseError{Value: s, Reason: "non-numeric field " + strconv.Quote(p)}
		}
		n[i] = v
	}
	d := Date{Year: n[0], Month: time.Month(n[1]), Day: n[2]}
	if !d.Valid() {
		return Date{}, &ParseError{Value: s, Reason: "not a calendar date"}
	}
	return d, nil
}

// DaysInMonth returns the number of days in month m of year y.
func DaysInMonth(y int, m time.Month) int {
	return datetime.DaysInMonth(y, datetime.Month(m))
}

// firstWeekday is the weekday of day 1 of the month, Sunday == 0.
func firstWeekday(y int, m time.Month) int {
	return int(time.Date(y, m, 1, 0, 0, 0, 0, time.Local).Weekday())
}
