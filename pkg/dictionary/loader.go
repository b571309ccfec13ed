/*
Package dictionary indexes a line-oriented wordlist by first letter.

The wordlist is streamed exactly once. Each line is trimmed of a single
trailing possessive suffix ("'s"), then filed under the lowercase of its
first character. Words are stored lowercased in a Patricia trie; each trie
item carries the original-case spellings together with their positions in
the file, so buckets can be materialized in exact file order, duplicates
included.

When a needed-letter set is supplied, lines whose bucket key is not in the
set are skipped. This is purely a memory optimization: indexing the full
wordlist yields identical observable behavior.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrUnreadable is returned when the wordlist cannot be opened for reading.
var ErrUnreadable = errors.New("wordlist is not readable")

// entry is one indexed wordlist line: the post-trim original-case word and
// its position in the file.
type entry struct {
	pos  int
	word string
}

// Loader streams a wordlist file into per-letter buckets.
type Loader struct {
	path   string
	needed map[byte]bool // nil indexes every letter
	trie   *patricia.Trie
	counts map[byte]int
	total  int
}

// NewLoader creates a loader for the wordlist at path. A nil needed set
// indexes the whole file.
func NewLoader(path string, needed map[byte]bool) *Loader {
	return &Loader{
		path:   path,
		needed: needed,
		trie:   patricia.NewTrie(),
		counts: make(map[byte]int),
	}
}

// Load opens and indexes the wordlist. It fails fast with ErrUnreadable
// before any indexing when the file cannot be opened.
func (l *Loader) Load() error {
	file, err := os.Open(l.path)
	if err != nil {
		log.Debugf("open wordlist %s: %v", l.path, err)
		return fmt.Errorf("%w: %s", ErrUnreadable, l.path)
	}
	defer file.Close()

	log.Debugf("indexing wordlist: %s", l.path)
	return l.LoadReader(file)
}

// LoadReader indexes words from an already-open line stream.
func (l *Loader) LoadReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	pos := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		word := TrimPossessive(line)
		if word == "" {
			continue
		}
		key := lowerFirst(word)
		if l.needed != nil && !l.needed[key] {
			continue
		}
		l.add(key, word, pos)
		pos++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading wordlist: %w", err)
	}

	log.Debugf("indexed %d words across %d letters", l.total, len(l.counts))
	return nil
}

func (l *Loader) add(key byte, word string, pos int) {
	prefix := patricia.Prefix(strings.ToLower(word))

	var entries []entry
	if item := l.trie.Get(prefix); item != nil {
		entries = item.([]entry)
	}
	entries = append(entries, entry{pos: pos, word: word})
	l.trie.Set(prefix, entries)

	l.counts[key]++
	l.total++
}

// BucketFor returns the candidate words for a letter in file order.
// A letter with no candidates yields an empty slice.
func (l *Loader) BucketFor(letter byte) []string {
	var entries []entry
	err := l.trie.VisitSubtree(patricia.Prefix(string(letter)), func(p patricia.Prefix, item patricia.Item) error {
		es, ok := item.([]entry)
		if !ok {
			log.Errorf("unexpected item type %T for key %s", item, p)
			return nil
		}
		entries = append(entries, es...)
		return nil
	})
	if err != nil {
		log.Errorf("visiting bucket '%c': %v", letter, err)
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].pos < entries[j].pos
	})

	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.word
	}
	return words
}

// WordCount reports the number of indexed words.
func (l *Loader) WordCount() int {
	return l.total
}

// LetterCount reports how many letters have at least one candidate.
func (l *Loader) LetterCount() int {
	return len(l.counts)
}

// TrimPossessive removes one trailing ASCII "'s" from a wordlist entry.
// Only a single occurrence is stripped: "boss's" becomes "boss", and a
// nested "x's's" keeps its inner suffix.
func TrimPossessive(word string) string {
	if strings.HasSuffix(word, "'s") {
		return word[:len(word)-2]
	}
	return word
}

// lowerFirst returns the bucket key for a word: the lowercase of its first
// byte. Non-letter keys are kept as-is; the sampler only ever asks for
// letters, so such buckets are simply never drawn from.
func lowerFirst(word string) byte {
	c := word[0]
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
