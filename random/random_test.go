package random

import (
	"regexp"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s, err := String(32, "ab")
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 32 || strings.Trim(s, "ab") != "" {
		t.Fatalf("unexpected string %q", s)
	}
}

func TestReference(t *testing.T) {
	re := regexp.MustCompile(`^ORD-[0-9A-Z]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref, err := Reference("ORD")
		if err != nil {
			t.Fatal(err)
		}
		if !re.MatchString(ref) {
			t.Fatalf("malformed reference %q", ref)
		}
		seen[ref] = true
	}

	if len(seen) < 99 {
		t.Fatalf("references repeat too often: %d distinct of 100", len(seen))
	}
}
