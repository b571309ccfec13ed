package dictionary

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func loadFrom(t *testing.T, wordlist string, needed map[byte]bool) *Loader {
	t.Helper()
	l := NewLoader("", needed)
	if err := l.LoadReader(strings.NewReader(wordlist)); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	return l
}

func TestTrimPossessive(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"dog's", "dog"},
		{"boss's", "boss"},
		{"dog", "dog"},
		{"s", "s"},
		{"'s", ""},
		{"x's's", "x's"}, // no recursion
		{"it's", "it"},
	}

	for _, tc := range testCases {
		if got := TrimPossessive(tc.input); got != tc.expected {
			t.Errorf("TrimPossessive(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

// bucket order follows file order, original case preserved
func TestBucketFileOrder(t *testing.T) {
	l := loadFrom(t, "zebra\nApple\nant\nAzure\nbat\n", nil)

	got := l.BucketFor('a')
	want := []string{"Apple", "ant", "Azure"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bucket 'a': expected %v, got %v", want, got)
	}
}

func TestBucketPossessiveIndexing(t *testing.T) {
	l := loadFrom(t, "Dog's\nboss's\n", nil)

	if got := l.BucketFor('d'); len(got) != 1 || got[0] != "Dog" {
		t.Errorf("expected [Dog], got %v", got)
	}
	if got := l.BucketFor('b'); len(got) != 1 || got[0] != "boss" {
		t.Errorf("expected [boss], got %v", got)
	}
}

func TestEmptyAndBlankLinesSkipped(t *testing.T) {
	l := loadFrom(t, "\n\nant\n's\n\nbat\n", nil)

	if l.WordCount() != 2 {
		t.Errorf("expected 2 words, got %d", l.WordCount())
	}
}

func TestDuplicateLinesKept(t *testing.T) {
	l := loadFrom(t, "ant\nant\nant\n", nil)

	if got := l.BucketFor('a'); len(got) != 3 {
		t.Errorf("expected 3 entries for duplicated word, got %d", len(got))
	}
}

func TestNeededLetterPruning(t *testing.T) {
	needed := map[byte]bool{'a': true}
	l := loadFrom(t, "ant\nbat\ncow\nape\n", needed)

	if got := l.BucketFor('a'); len(got) != 2 {
		t.Errorf("expected 2 words in 'a' bucket, got %v", got)
	}
	if got := l.BucketFor('b'); len(got) != 0 {
		t.Errorf("expected pruned 'b' bucket, got %v", got)
	}
	if l.WordCount() != 2 {
		t.Errorf("expected 2 indexed words after pruning, got %d", l.WordCount())
	}
}

func TestBucketForMissingLetter(t *testing.T) {
	l := loadFrom(t, "ant\n", nil)

	if got := l.BucketFor('z'); len(got) != 0 {
		t.Errorf("expected empty bucket for 'z', got %v", got)
	}
}

func TestLetterCount(t *testing.T) {
	l := loadFrom(t, "ant\nape\nbat\n", nil)

	if l.LetterCount() != 2 {
		t.Errorf("expected 2 letters, got %d", l.LetterCount())
	}
	if l.WordCount() != 3 {
		t.Errorf("expected 3 words, got %d", l.WordCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-wordlist")
	l := NewLoader(path, nil)

	err := l.Load()
	if err == nil {
		t.Fatal("expected error for missing wordlist")
	}
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("expected ErrUnreadable, got %v", err)
	}
}

func TestBucketKeyIsCaseInsensitive(t *testing.T) {
	l := loadFrom(t, "Apple\napricot\n", nil)

	if got := l.BucketFor('a'); len(got) != 2 {
		t.Errorf("expected both spellings under 'a', got %v", got)
	}
}
