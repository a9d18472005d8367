package organizer

import (
	"github.com/fenilsonani/tidyfiles/internal/tables"
)

// DefaultMinTokenLength is the shortest token that can name a group
const DefaultMinTokenLength = 4

// ExtractTokens returns the candidate group names for a filename stem, in
// first-seen order and without duplicates.
//
// Candidates are the maximal runs of ASCII letters and digits, followed by the
// whole stem. Each is lowercased and kept when it is at least minLength bytes
// long and not a stop word.
func ExtractTokens(stem string, stopWords tables.StringSet, minLength int) []string {
	occurrences := tokenOccurrences(stem, stopWords, minLength)
	if len(occurrences) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(occurrences))
	tokens := make([]string, 0, len(occurrences))
	for _, tok := range occurrences {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

// tokenOccurrences is ExtractTokens without de-duplication
func tokenOccurrences(stem string, stopWords tables.StringSet, minLength int) []string {
	if stem == "" {
		return nil
	}

	var out []string
	keep := func(tok string) {
		if len(tok) >= minLength && !stopWords.Has(tok) {
			out = append(out, tok)
		}
	}

	start := -1
	for i := 0; i < len(stem); i++ {
		if isASCIIAlnum(stem[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			keep(asciiLower(stem[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		keep(asciiLower(stem[start:]))
	}

	keep(asciiLower(stem))
	return out
}

func isASCIIAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// asciiLower lowercases A-Z only; other bytes pass through
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
