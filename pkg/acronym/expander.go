// Package acronym is the core, turning input text into backronym lines by
// drawing one dictionary word per letter of each input token.
package acronym

import (
	"errors"
	"math/rand"
	"strings"
)

// ErrNoInputLetters is returned when the input contains zero alphabetic
// characters after sanitization.
var ErrNoInputLetters = errors.New("input has no alphabetic characters")

// Options control how expanded lines are formatted.
type Options struct {
	// PlaceholderOpen and PlaceholderClose wrap the letter when a bucket
	// has no candidates, e.g. "[" + "z" + "?]".
	PlaceholderOpen  string
	PlaceholderClose string
}

// DefaultOptions returns the builtin formatting defaults.
func DefaultOptions() Options {
	return Options{
		PlaceholderOpen:  "[",
		PlaceholderClose: "?]",
	}
}

// Expander ties the tokenizer, sampler and formatter together.
type Expander struct {
	sampler *Sampler
	opts    Options
}

// NewExpander creates an Expander drawing from src with the given generator.
func NewExpander(src WordSource, rng *rand.Rand, opts Options) *Expander {
	return &Expander{
		sampler: NewSampler(src, rng),
		opts:    opts,
	}
}

// Expand produces one line per input token that still has letters after
// sanitization, in original token order. Tokens that sanitize to empty are
// skipped entirely, not emitted as blank lines.
func (e *Expander) Expand(text string) ([]string, error) {
	tokens := Tokenize(text)
	if LetterCount(tokens) == 0 {
		return nil, ErrNoInputLetters
	}

	var lines []string
	for _, t := range tokens {
		if t.Letters == "" {
			continue
		}
		words := make([]string, 0, len(t.Letters))
		for i := 0; i < len(t.Letters); i++ {
			c := t.Letters[i]
			if w, ok := e.sampler.Draw(c); ok {
				words = append(words, TitleCase(w))
			} else {
				words = append(words, e.opts.PlaceholderOpen+string(c)+e.opts.PlaceholderClose)
			}
		}
		lines = append(lines, strings.Join(words, " "))
	}
	return lines, nil
}

// Sampler exposes the owned sampler, mainly for bucket stats.
func (e *Expander) Sampler() *Sampler {
	return e.sampler
}

// TitleCase uppercases the first character and leaves the remainder
// unchanged, so mixed-case dictionary entries keep their spelling.
func TitleCase(w string) string {
	if w == "" {
		return w
	}
	if c := w[0]; c >= 'a' && c <= 'z' {
		return string(c-('a'-'A')) + w[1:]
	}
	return w
}
