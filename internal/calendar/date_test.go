package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate_RoundTrip(t *testing.T) {
	t.Parallel()

	for y := 1999; y <= 2025; y += 13 {
		for m := time.January; m <= time.December; m++ {
			for d := 1; d <= DaysInMonth(y, m); d++ {
				want := Date{Year: y, Month: m, Day: d}
				got, err := ParseDate(want.String())
				if err != nil {
					t.Fatalf("ParseDate(%q): %v", want.String(), err)
				}
				if got != want {
					t.Fatalf("round trip %q: got %#v want %#v", want.String(), got, want)
				}
			}
		}
	}
}

func TestParseDate_AcceptsPaddingAndWhitespace(t *testing.T) {
	t.Parallel()

	got, err := ParseDate(" 2024-06-03 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if want := (Date{2024, time.June, 3}); got != want {
		t.Fatalf("got %#v want %#v", got, want)
	}
	if s := got.String(); s != "2024-6-3" {
		t.Fatalf("String() = %q, want unpadded 2024-6-3", s)
	}
}

func TestParseDate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "too few tokens", in: "2024-6"},
		{name: "too many tokens", in: "2024-6-1-2"},
		{name: "non numeric", in: "2024-jun-1"},
		{name: "empty token", in: "2024--1"},
		{name: "month out of range", in: "2024-13-1"},
		{name: "day out of range", in: "2023-2-29"},
		{name: "empty", in: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseDate(tt.in)
			if err == nil {
				t.Fatalf("expected error for %q", tt.in)
			}
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestDate_Label(t *testing.T) {
	t.Parallel()

	if got := (Date{2024, time.June, 3}).Label(); got != "Mon Jun 03 2024" {
		t.Fatalf("Label() = %q", got)
	}
	if got := (Date{}).Label(); got != "" {
		t.Fatalf("zero Label() = %q", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		y    int
		m    time.Month
		want int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.y, tt.m); got != tt.want {
			t.Fatalf("DaysInMonth(%d, %v) = %d, want %d", tt.y, tt.m, got, tt.want)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := map[string]Policy{
		"past":   PastOnly,
		"-1":     PastOnly,
		"FUTURE": FutureOnly,
		"1":      FutureOnly,
		"both":   Both,
		"0":      Both,
	}
	for in, want := range tests {
		got, err := ParsePolicy(in)
		if err != nil {
			t.Fatalf("ParsePolicy(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePolicy(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePolicy("sometimes"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
