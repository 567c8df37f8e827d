// Package naming holds the identifier and label helpers shared by the
// synthesizers and the code emitter.
package naming

import (
	"regexp"
	"strconv"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// IsIdentifier reports whether name can be used verbatim as a data-binding
// key and a generated identifier: a letter or underscore followed by letters,
// digits, or underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', isLetterRune(r):
		case isDigitRune(r):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Label converts a field name into a human-friendly label, splitting on
// underscores, dashes, and camelCase boundaries.
func Label(name string) string {
	if name == "" {
		return ""
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		for _, part := range strings.Split(splitCamel(word), " ") {
			segments = append(segments, titleCase(part))
		}
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

// Quote renders value as a double-quoted string literal safe to embed in the
// emitted source text.
func Quote(value string) string {
	return strconv.Quote(value)
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func isLetterRune(r rune) bool { return isLetter(r) }
func isDigitRune(r rune) bool  { return isDigit(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
