package format

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	PersistedValue string `json:"persistedValue"`
	IsOpen         bool   `json:"isOpen"`
	Days           []int  `json:"days"`
	Label          any    `json:"label"`
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, Envelope{Data: sample{PersistedValue: "2024-6-3", Days: []int{1, 2}}}, "json", false)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{"data":{"persistedValue":"2024-6-3","isOpen":false,"days":[1,2],"label":null}}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestWrite_EDN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	env := Envelope{
		Data:  sample{PersistedValue: "2024-6-3", IsOpen: true, Days: []int{1, 2}},
		Hints: []string{"next"},
	}
	if err := Write(&buf, env, "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:data {:days [1 2] :is-open true :label nil :persisted-value "2024-6-3"} :hints ["next"]}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestWrite_EDNPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []int{1}, "b": map[string]any{}}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := strings.Join([]string{
		"{",
		"  :a [",
		"    1",
		"  ]",
		"  :b {}",
		"}",
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, 1, "xml", false); err == nil {
		t.Fatalf("expected error")
	}
}

func TestKeyword(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"persistedValue": ":persisted-value",
		"_hints":         ":hints",
		"days":           ":days",
		"leading blanks": ":leading-blanks",
		"is_today":       ":is-today",
	}
	for in, want := range tests {
		if got := Keyword(in); got != want {
			t.Fatalf("Keyword(%q) = %q, want %q", in, got, want)
		}
	}
}
