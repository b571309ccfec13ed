package acronym

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func newTestExpander(src mapSource, seed int64) *Expander {
	return NewExpander(src, rand.New(rand.NewSource(seed)), DefaultOptions())
}

func TestExpandLineShape(t *testing.T) {
	src := mapSource{
		'a': {"apple", "anise"},
		'b': {"banana"},
		'c': {"cherry"},
		'd': {"dog"},
	}
	e := newTestExpander(src, 1)

	lines, err := e.Expand("abcd ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	// one word per letter of the corresponding token
	first := strings.Split(lines[0], " ")
	if len(first) != 4 {
		t.Errorf("expected 4 words on first line, got %d: %q", len(first), lines[0])
	}
	second := strings.Split(lines[1], " ")
	if len(second) != 2 {
		t.Errorf("expected 2 words on second line, got %d: %q", len(second), lines[1])
	}

	for _, w := range first {
		if w[0] < 'A' || w[0] > 'Z' {
			t.Errorf("word %q is not title-cased", w)
		}
	}
}

func TestExpandFirstLetterOrder(t *testing.T) {
	src := mapSource{
		'a': {"apple"},
		'b': {"banana"},
		'c': {"cherry"},
		'd': {"dog"},
	}
	e := newTestExpander(src, 5)

	lines, err := e.Expand("ABCD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	words := strings.Split(lines[0], " ")
	expected := []string{"Apple", "Banana", "Cherry", "Dog"}
	for i, want := range expected {
		if words[i] != want {
			t.Errorf("word %d: expected %q, got %q", i, want, words[i])
		}
	}
}

// tokens that sanitize to empty are skipped, not blank-lined
func TestExpandSkipsEmptyTokens(t *testing.T) {
	src := mapSource{'a': {"apple"}}
	e := newTestExpander(src, 1)

	lines, err := e.Expand("!!! a 123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(lines), lines)
	}
	if lines[0] != "Apple" {
		t.Errorf("expected %q, got %q", "Apple", lines[0])
	}
}

func TestExpandNoInputLetters(t *testing.T) {
	e := newTestExpander(mapSource{}, 1)

	for _, input := range []string{"", "   ", "123 456", "!!! ???"} {
		lines, err := e.Expand(input)
		if !errors.Is(err, ErrNoInputLetters) {
			t.Errorf("Expand(%q): expected ErrNoInputLetters, got %v", input, err)
		}
		if lines != nil {
			t.Errorf("Expand(%q): expected no output, got %v", input, lines)
		}
	}
}

func TestExpandPlaceholder(t *testing.T) {
	src := mapSource{'a': {"apple"}}
	e := newTestExpander(src, 1)

	lines, err := e.Expand("az")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	words := strings.Split(lines[0], " ")
	if words[1] != "[z?]" {
		t.Errorf("expected placeholder %q, got %q", "[z?]", words[1])
	}
	if !strings.Contains(words[1], "z") {
		t.Errorf("placeholder %q does not contain the letter", words[1])
	}
}

// fixed seed and fixed wordlist give identical output across runs
func TestExpandDeterministicUnderFixedSeed(t *testing.T) {
	src := mapSource{
		'f': {"fig", "fox", "fan", "fir"},
		'u': {"urn", "udder"},
		'b': {"bat", "bun"},
		'a': {"ant", "ape", "asp"},
		'r': {"rat", "rug"},
	}

	a := newTestExpander(src, 42)
	b := newTestExpander(src, 42)

	linesA, errA := a.Expand("fubar fubar")
	linesB, errB := b.Expand("fubar fubar")
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	for i := range linesA {
		if linesA[i] != linesB[i] {
			t.Errorf("line %d diverged:\n%q\n%q", i, linesA[i], linesB[i])
		}
	}
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"apple", "Apple"},
		{"Apple", "Apple"},
		{"mcIntosh", "McIntosh"},
		{"", ""},
		{"x", "X"},
	}

	for _, tc := range testCases {
		if got := TitleCase(tc.input); got != tc.expected {
			t.Errorf("TitleCase(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}
