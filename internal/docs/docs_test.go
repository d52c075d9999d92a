package docs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	want := []string{"keys", "policy", "values"}
	if diff := cmp.Diff(want, Topics()); diff != "" {
		t.Fatalf("topics (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	for _, topic := range Topics() {
		body, ok := Get(strings.ToUpper(topic))
		if !ok || strings.TrimSpace(body) == "" {
			t.Fatalf("topic %q missing", topic)
		}
	}
	if _, ok := Get("../docs"); ok {
		t.Fatalf("path-like topics must be rejected")
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("unknown topic must be rejected")
	}
}
