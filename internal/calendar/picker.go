// Package calendar holds the state of a month-grid date picker whose
// navigation and selection are bounded by a past/future Policy.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Picker is the view state of one date picker. It is not safe for
// concurrent use; the UI surface that creates it owns it.
type Picker struct {
	policy Policy
	clock  Clock

	year  int
	month time.Month

	selected Date
	open     bool

	numDays       int
	leadingBlanks int

	listeners []func()
}

type Option func(*Picker)

// WithClock substitutes the source of "today".
func WithClock(c Clock) Option {
	return func(p *Picker) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithListener registers fn for the widget-updated signal.
func WithListener(fn func()) Option {
	return func(p *Picker) { p.OnWidgetUpdated(fn) }
}

// New initializes a picker from an optional persisted "YYYY-M-D" value. An
// empty value shows today's month with nothing selected. A malformed value
// returns a *ParseError and no picker.
func New(existing string, policy Policy, opts ...Option) (*Picker, error) {
	p := &Picker{policy: policy, clock: SystemClock{}}
	for _, o := range opts {
		o(p)
	}
	if strings.TrimSpace(existing) != "" {
		d, err := ParseDate(existing)
		if err != nil {
			return nil, err
		}
		p.selected = d
		p.year, p.month = d.Year, d.Month
	} else {
		t := p.today()
		p.year, p.month = t.Year, t.Month
	}
	p.recompute()
	return p, nil
}

// OnWidgetUpdated subscribes fn to successful selections. Delivery is
// synchronous, in registration order.
func (p *Picker) OnWidgetUpdated(fn func()) {
	if fn != nil {
		p.listeners = append(p.listeners, fn)
	}
}

func (p *Picker) Policy() Policy { return p.policy }

func (p *Picker) Displayed() (int, time.Month) { return p.year, p.month }

func (p *Picker) Selected() (Date, bool) { return p.selected, !p.selected.IsZero() }

func (p *Picker) DaysInMonth() int { return p.numDays }

// LeadingBlanks is the number of empty cells before day 1 in a
// Sunday-first grid.
func (p *Picker) LeadingBlanks() int { return p.leadingBlanks }

func (p *Picker) IsOpen() bool { return p.open }
func (p *Picker) Open()        { p.open = true }
func (p *Picker) Close()       { p.open = false }
func (p *Picker) Toggle()      { p.open = !p.open }

// Today is the clock's current day.
func (p *Picker) Today() Date { return p.today() }

// DisplayLabel renders the selection, e.g. "Mon Jun 03 2024", or "".
func (p *Picker) DisplayLabel() string { return p.selected.Label() }

// PersistedValue serializes the selection as "Y-M-D", or "".
func (p *Picker) PersistedValue() string { return p.selected.String() }

// IsToday reports whether day of the displayed month is today.
func (p *Picker) IsToday(day int) bool {
	p.mustBeDay(day)
	t := p.today()
	return day == t.Day && p.month == t.Month && p.year == t.Year
}

// IsSelectable applies the policy to day of the displayed month. Any day
// outside the current month is selectable; Navigate keeps the display
// within the policy bound.
func (p *Picker) IsSelectable(day int) bool {
	p.mustBeDay(day)
	t := p.today()
	if p.year != t.Year {
		return true
	}
	if p.month != t.Month {
		return true
	}
	s := p.policy.sign()
	return s*day >= s*t.Day
}

func (p *Picker) IsSelected(day int) bool {
	return p.selected == Date{Year: p.year, Month: p.month, Day: day}
}

// OnDateClick selects day of the displayed month and closes the picker.
// Unselectable days are ignored. It reports whether the selection changed,
// which is also when widget-updated listeners run.
func (p *Picker) OnDateClick(day int) bool {
	if !p.IsSelectable(day) {
		return false
	}
	p.open = false
	d := Date{Year: p.year, Month: p.month, Day: day}
	if p.selected == d {
		return false
	}
	p.selected = d
	for _, fn := range p.listeners {
		fn()
	}
	return true
}

// Navigate moves the display by delta months. A move past the policy bound
// is ignored and reported as false.
func (p *Picker) Navigate(delta int) bool {
	y, m, ok := p.target(delta)
	if !ok {
		return false
	}
	p.year, p.month = y, m
	p.recompute()
	return true
}

// CanNavigate reports whether Navigate(delta) would move the display.
func (p *Picker) CanNavigate(delta int) bool {
	_, _, ok := p.target(delta)
	return ok
}

// Weeks lays out the displayed month as rows of seven cells, Sunday first.
// Blank cells are 0.
func (p *Picker) Weeks() [][]int {
	cells := p.leadingBlanks + p.numDays
	rows := make([][]int, 0, (cells+6)/7)
	row := make([]int, 7)
	for i := 0; i < cells; i++ {
		if i >= p.leadingBlanks {
			row[i%7] = i - p.leadingBlanks + 1
		}
		if i%7 == 6 {
			rows = append(rows, row)
			row = make([]int, 7)
		}
	}
	if cells%7 != 0 {
		rows = append(rows, row)
	}
	return rows
}

func (p *Picker) target(delta int) (int, time.Month, bool) {
	// 0-indexed month; floor division and true modulo so negative deltas
	// roll back into earlier years.
	m0 := int(p.month) - 1 + delta
	y := p.year + floorDiv(m0, 12)
	m0 = mod(m0, 12)

	t := p.today()
	s := p.policy.sign()
	if s*y < s*t.Year {
		return 0, 0, false
	}
	if y == t.Year && s*m0 < s*(int(t.Month)-1) {
		return 0, 0, false
	}
	return y, time.Month(m0 + 1), true
}

func (p *Picker) recompute() {
	p.numDays = DaysInMonth(p.year, p.month)
	p.leadingBlanks = firstWeekday(p.year, p.month)
}

func (p *Picker) today() Date { return DateOf(p.clock.Now()) }

func (p *Picker) mustBeDay(day int) {
	if day < 1 || day > p.numDays {
		panic(fmt.Sprintf("calendar: day %d out of range 1..%d for %04d-%02d", day, p.numDays, p.year, p.month))
	}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
