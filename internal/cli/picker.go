package cli

import (
	"fmt"
	"strconv"
	"strings"

	"showdate-cli/internal/calendar"
)

// newPicker builds a picker from --value, --policy and --today.
func (app *App) newPicker() (*calendar.Picker, error) {
	policy, err := calendar.ParsePolicy(app.Policy)
	if err != nil {
		return nil, err
	}
	opts := []calendar.Option{}
	if strings.TrimSpace(app.Today) != "" {
		today, err := calendar.ParseDate(app.Today)
		if err != nil {
			return nil, fmt.Errorf("--today: %w", err)
		}
		opts = append(opts, calendar.WithClock(calendar.FixedClock(today)))
	}
	p, err := calendar.New(app.Value, policy, opts...)
	if err != nil {
		return nil, fmt.Errorf("--value: %w", err)
	}
	return p, nil
}

// parseDay validates a day-of-month argument against the displayed month.
// Picker methods panic on out-of-range days, so commands check first.
func parseDay(p *calendar.Picker, s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	if day < 1 || day > p.DaysInMonth() {
		y, m := p.Displayed()
		return 0, dayRangeError{day: day, max: p.DaysInMonth(), year: y, month: int(m)}
	}
	return day, nil
}

type dayRangeError struct {
	day, max    int
	year, month int
}

func (e dayRangeError) Error() string {
	return fmt.Sprintf("day %d out of range 1..%d for %d-%d", e.day, e.max, e.year, e.month)
}

type dayJSON struct {
	Day        int  `json:"day"`
	Today      bool `json:"today"`
	Selectable bool `json:"selectable"`
	Selected   bool `json:"selected"`
}

type monthJSON struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	MonthName     string    `json:"monthName"`
	Policy        string    `json:"policy"`
	Today         string    `json:"today"`
	Selected      string    `json:"selected"`
	DaysInMonth   int       `json:"daysInMonth"`
	LeadingBlanks int       `json:"leadingBlanks"`
	CanPrev       bool      `json:"canPrev"`
	CanNext       bool      `json:"canNext"`
	Weeks         [][]int   `json:"weeks"`
	Days          []dayJSON `json:"days"`
}

func monthOf(p *calendar.Picker) monthJSON {
	y, m := p.Displayed()
	out := monthJSON{
		Year:          y,
		Month:         int(m),
		MonthName:     m.String(),
		Policy:        p.Policy().String(),
		Today:         p.Today().String(),
		Selected:      p.PersistedValue(),
		DaysInMonth:   p.DaysInMonth(),
		LeadingBlanks: p.LeadingBlanks(),
		CanPrev:       p.CanNavigate(-1),
		CanNext:       p.CanNavigate(1),
		Weeks:         p.Weeks(),
		Days:          make([]dayJSON, 0, p.DaysInMonth()),
	}
	for d := 1; d <= p.DaysInMonth(); d++ {
		out.Days = append(out.Days, dayJSON{
			Day:        d,
			Today:      p.IsToday(d),
			Selectable: p.IsSelectable(d),
			Selected:   p.IsSelected(d),
		})
	}
	return out
}
