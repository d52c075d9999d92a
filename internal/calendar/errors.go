package calendar

import (
	"errors"
	"strconv"
)

// ErrParse matches every *ParseError via errors.Is.
var ErrParse = errors.New("calendar: parse error")

// ParseError reports a malformed persisted date value.
type ParseError struct {
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return "invalid date " + strconv.Quote(e.Value) + ": " + e.Reason
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }
