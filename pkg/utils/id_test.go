package utils

import (
	"regexp"
	"testing"
)

var uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestSecureIDGeneratorFormat(t *testing.T) {
	g := NewSecureIDGenerator()
	for i := 0; i < 10; i++ {
		id := g.Next()
		if !uuidRe.MatchString(id) {
			t.Fatalf("id %q is not a v4 UUID", id)
		}
	}
}

func TestSecureIDGeneratorUniqueness(t *testing.T) {
	g := NewSecureIDGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.Next()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestPseudoIDGeneratorDeterminism(t *testing.T) {
	a := NewPseudoIDGenerator(42)
	b := NewPseudoIDGenerator(42)
	for i := 0; i < 5; i++ {
		x, y := a.Next(), b.Next()
		if x != y {
			t.Fatalf("same seed diverged: %q vs %q", x, y)
		}
		if !uuidRe.MatchString(x) {
			t.Fatalf("id %q is not UUID-shaped", x)
		}
	}

	c := NewPseudoIDGenerator(7)
	if c.Next() == NewPseudoIDGenerator(42).Next() {
		t.Error("different seeds produced the same first id")
	}
}
