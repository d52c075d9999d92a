package calendar

import (
	"fmt"
	"strings"
)

// Policy constrains selection and navigation relative to today. The integer
// value is the direction in which dates are allowed.
type Policy int

const (
	PastOnly   Policy = -1
	Both       Policy = 0
	FutureOnly Policy = 1
)

func (p Policy) String() string {
	switch p {
	case PastOnly:
		return "past"
	case FutureOnly:
		return "future"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts past|future|both, or the signs -1|1|0.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "past", "past-only", "past_only", "-1":
		return PastOnly, nil
	case "future", "future-only", "future_only", "1":
		return FutureOnly, nil
	case "both", "any", "0", "":
		return Both, nil
	}
	return Both, fmt.Errorf("unknown policy %q (expected past|future|both)", s)
}

func (p Policy) sign() int { return int(p) }
