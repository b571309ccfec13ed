package acronym

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// WordSource yields the candidate words for a single lowercase letter.
// Word order in the returned slice is the source's own (file) order.
type WordSource interface {
	BucketFor(letter byte) []string
}

// Sampler draws words from per-letter buckets with low repetition.
// Each bucket keeps a shuffled permutation of its candidate indices and a
// cursor; draws consume the permutation in order and a fresh shuffle is
// generated once it runs out. The Sampler exclusively owns this state.
type Sampler struct {
	src     WordSource
	rng     *rand.Rand
	buckets map[byte]*bucket
}

type bucket struct {
	words  []string
	perm   []int
	cursor int
}

// NewSampler creates a Sampler drawing from src with the given generator.
// Passing a fixed-seed rand makes draw sequences reproducible.
func NewSampler(src WordSource, rng *rand.Rand) *Sampler {
	return &Sampler{
		src:     src,
		rng:     rng,
		buckets: make(map[byte]*bucket),
	}
}

// Draw returns one word whose first letter matches the requested letter.
// The second return is false when the letter has no candidates at all.
// Within one pass over a bucket of size n, no word repeats; across passes
// a repeat is possible only at the reshuffle boundary.
func (s *Sampler) Draw(letter byte) (string, bool) {
	b, ok := s.buckets[letter]
	if !ok {
		b = &bucket{words: s.src.BucketFor(letter)}
		s.buckets[letter] = b
		log.Debugf("bucket '%c' materialized with %d candidates", letter, len(b.words))
	}

	if len(b.words) == 0 {
		return "", false
	}

	// Exhaustion is detected after the last element was consumed.
	if b.cursor >= len(b.perm) {
		b.reshuffle(s.rng)
	}

	word := b.words[b.perm[b.cursor]]
	b.cursor++
	return word, true
}

// BucketSize reports the candidate count for a letter, materializing the
// bucket if needed.
func (s *Sampler) BucketSize(letter byte) int {
	b, ok := s.buckets[letter]
	if !ok {
		b = &bucket{words: s.src.BucketFor(letter)}
		s.buckets[letter] = b
	}
	return len(b.words)
}

func (b *bucket) reshuffle(rng *rand.Rand) {
	if b.perm == nil {
		b.perm = make([]int, len(b.words))
		for i := range b.perm {
			b.perm[i] = i
		}
	}
	rng.Shuffle(len(b.perm), func(i, j int) {
		b.perm[i], b.perm[j] = b.perm[j], b.perm[i]
	})
	b.cursor = 0
}
