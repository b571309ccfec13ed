package acronym

import (
	"strings"
)

// Token is one whitespace-delimited unit of the original input text.
// Letters holds the sanitized lowercase letter stream; it may be empty
// when the token was pure punctuation.
type Token struct {
	Raw     string
	Letters string
}

// Tokenize splits free-form text on runs of whitespace and sanitizes each
// token. Token order and count are preserved, including tokens that
// sanitize to empty. An empty or whitespace-only string yields no tokens.
func Tokenize(text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, Token{Raw: f, Letters: Sanitize(f)})
	}
	return tokens
}

// Sanitize removes every character that is not an ASCII letter and
// lowercases the remainder. Sanitizing an already-sanitized string is a
// no-op.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// NeededLetters reports the set of letters present across all tokens,
// used to prune wordlist indexing down to buckets that will be drawn from.
func NeededLetters(tokens []Token) map[byte]bool {
	needed := make(map[byte]bool)
	for _, t := range tokens {
		for i := 0; i < len(t.Letters); i++ {
			needed[t.Letters[i]] = true
		}
	}
	return needed
}

// LetterCount returns the total sanitized letter count across all tokens.
func LetterCount(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		n += len(t.Letters)
	}
	return n
}
