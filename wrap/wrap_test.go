package wrap

import (
	"reflect"
	"testing"
)

// monospace measures one unit per rune.
func monospace(s string) float64 {
	return float64(len([]rune(s)))
}

func TestLines(t *testing.T) {
	cases := []struct {
		name  string
		s     string
		width float64
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "Let’s build", 20, []string{"Let’s build"}},
		{"wraps", "I help businesses build modern websites", 16, []string{"I help", "businesses build", "modern websites"}},
		{"long_word", "a supercalifragilistic b", 5, []string{"a", "supercalifragilistic", "b"}},
		{"newlines", "one\ntwo three", 5, []string{"one", "two", "three"}},
		{"no_limit", "one two\nthree", 0, []string{"one two", "three"}},
		{"collapses_spaces", "a   b", 10, []string{"a b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Lines(c.s, c.width, monospace)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Lines(%q, %v) = %q, want %q", c.s, c.width, got, c.want)
			}
		})
	}
}
