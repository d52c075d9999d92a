package main

import (
	"reflect"
	"testing"
)

func TestRewriteBareValueArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"showdate"},
			want: []string{"showdate"},
		},
		{
			name: "bare value first token",
			in:   []string{"showdate", "2024-6-3"},
			want: []string{"showdate", "--value", "2024-6-3"},
		},
		{
			name: "bare value after value flag",
			in:   []string{"showdate", "--policy", "future", "2024-06-03"},
			want: []string{"showdate", "--policy", "future", "--value", "2024-06-03"},
		},
		{
			name: "bare value after equals flag",
			in:   []string{"showdate", "--policy=past", "2024-6-3", "--once"},
			want: []string{"showdate", "--policy=past", "--value", "2024-6-3", "--once"},
		},
		{
			name: "flag value that looks like a date is not rewritten",
			in:   []string{"showdate", "--today", "2024-6-15"},
			want: []string{"showdate", "--today", "2024-6-15"},
		},
		{
			name: "subcommand argument not rewritten",
			in:   []string{"showdate", "parse", "2024-6-3"},
			want: []string{"showdate", "parse", "2024-6-3"},
		},
		{
			name: "double dash stops rewriting",
			in:   []string{"showdate", "--", "2024-6-3"},
			want: []string{"showdate", "--", "2024-6-3"},
		},
		{
			name: "not a date",
			in:   []string{"showdate", "2024-6"},
			want: []string{"showdate", "2024-6"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteBareValueArgs(append([]string(nil), tt.in...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
