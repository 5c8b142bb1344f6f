package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordLength is the number of codepoints an accepted word has.
const WordLength = 5

const (
	dotlessLower = "ı" // U+0131
	dotlessUpper = "I" // U+0049
	dottedLower  = "i" // U+0069
	dottedUpper  = "İ" // U+0130
)

// Accept reports whether word is exactly WordLength codepoints long and
// every codepoint is a Unicode letter.
// Invalid UTF-8 decodes to utf8.RuneError, which is not a letter.
func Accept(word string) bool {
	if utf8.RuneCountInString(word) != WordLength {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Transform maps the Turkish dotless and dotted lowercase i explicitly and
// then uppercases the rest with the locale-neutral caser.
// The explicit maps must run first: a neutral caser turns ı into I and i into I too.
func Transform(word string) string {
	word = strings.ReplaceAll(word, dotlessLower, dotlessUpper)
	word = strings.ReplaceAll(word, dottedLower, dottedUpper)
	return upper(word)
}

// Normalize trims line and, when the result is accepted, returns its
// transformed form. ok is false for rejected lines.
func Normalize(line string) (word string, ok bool) {
	word = strings.TrimFunc(line, isSpace)
	if !Accept(word) {
		return "", false
	}
	return Transform(word), true
}

// isSpace is unicode.IsSpace plus the ASCII file, group, record and unit
// separators (U+001C..U+001F).
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// upper applies full Unicode uppercase mapping (ß becomes SS).
// A Caser holds state, so one is built per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
