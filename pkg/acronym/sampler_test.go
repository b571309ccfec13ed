package acronym

import (
	"math/rand"
	"strings"
	"testing"
)

// mapSource is a fixed in-memory WordSource for sampler tests.
type mapSource map[byte][]string

func (m mapSource) BucketFor(letter byte) []string { return m[letter] }

func newTestSampler(src mapSource, seed int64) *Sampler {
	return NewSampler(src, rand.New(rand.NewSource(seed)))
}

func TestDrawFirstLetterMatches(t *testing.T) {
	src := mapSource{
		'a': {"apple", "Avocado", "anise"},
		'b': {"banana"},
	}
	s := newTestSampler(src, 1)

	for i := 0; i < 20; i++ {
		for _, letter := range []byte{'a', 'b'} {
			word, ok := s.Draw(letter)
			if !ok {
				t.Fatalf("draw %d for %q: unexpected no-match", i, letter)
			}
			if strings.ToLower(word)[0] != letter {
				t.Errorf("draw %d: word %q does not start with %q", i, word, letter)
			}
		}
	}
}

// a full pass over a bucket of size n must not repeat a word
func TestDrawDistinctWithinPass(t *testing.T) {
	words := []string{"ant", "ape", "arc", "ash", "axe"}
	s := newTestSampler(mapSource{'a': words}, 7)

	seen := make(map[string]bool)
	for i := 0; i < len(words); i++ {
		word, ok := s.Draw('a')
		if !ok {
			t.Fatalf("draw %d: unexpected no-match", i)
		}
		if seen[word] {
			t.Errorf("draw %d: word %q repeated within one pass", i, word)
		}
		seen[word] = true
	}
}

// two passes cover every candidate exactly twice
func TestDrawReshuffleCoversAll(t *testing.T) {
	words := []string{"bat", "bee", "bog", "bun"}
	s := newTestSampler(mapSource{'b': words}, 3)

	counts := make(map[string]int)
	for i := 0; i < 2*len(words); i++ {
		word, ok := s.Draw('b')
		if !ok {
			t.Fatalf("draw %d: unexpected no-match", i)
		}
		counts[word]++
	}
	for _, w := range words {
		if counts[w] != 2 {
			t.Errorf("word %q drawn %d times across two passes, expected 2", w, counts[w])
		}
	}
}

func TestDrawNoMatch(t *testing.T) {
	s := newTestSampler(mapSource{'a': {"apple"}}, 1)

	word, ok := s.Draw('z')
	if ok {
		t.Errorf("expected no-match for 'z', got %q", word)
	}
	if word != "" {
		t.Errorf("no-match should return empty word, got %q", word)
	}
}

// identical seeds must produce identical draw sequences
func TestDrawDeterministicUnderFixedSeed(t *testing.T) {
	src := mapSource{
		'c': {"cat", "cow", "cup", "cab", "cod"},
		'd': {"dog", "dot", "dam"},
	}
	a := newTestSampler(src, 99)
	b := newTestSampler(src, 99)

	for i := 0; i < 30; i++ {
		letter := byte('c')
		if i%3 == 0 {
			letter = 'd'
		}
		wa, _ := a.Draw(letter)
		wb, _ := b.Draw(letter)
		if wa != wb {
			t.Fatalf("draw %d diverged: %q vs %q", i, wa, wb)
		}
	}
}

func TestBucketSize(t *testing.T) {
	s := newTestSampler(mapSource{'a': {"ant", "ape"}}, 1)
	if n := s.BucketSize('a'); n != 2 {
		t.Errorf("expected bucket size 2, got %d", n)
	}
	if n := s.BucketSize('z'); n != 0 {
		t.Errorf("expected bucket size 0, got %d", n)
	}
}
