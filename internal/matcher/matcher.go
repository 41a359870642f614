// Package matcher implements literal substring matching for single lines.
//
// Case-insensitive matching never searches a folded copy of the line. It slides a
// window of the pattern's rune count across the original line and compares each
// window with strings.EqualFold, so reported offsets always index the original text
// even when folding would change a rune's encoded length.
package matcher

import (
	"strings"
	"unicode/utf8"
)

// Span is the byte range [Start, End) of a match within the original line.
type Span struct {
	Start int
	End   int
}

// Split decomposes line around the span into the text before the match,
// the match exactly as it appears in line, and the text after it.
func (s Span) Split(line string) (before, matched, after string) {
	return line[:s.Start], line[s.Start:s.End], line[s.End:]
}

// Matcher tests lines against one literal pattern.
type Matcher struct {
	pattern    string
	ignoreCase bool
	runeCount  int
}

// New creates a Matcher for pattern.
func New(pattern string, ignoreCase bool) *Matcher {
	return &Matcher{
		pattern:    pattern,
		ignoreCase: ignoreCase,
		runeCount:  utf8.RuneCountInString(pattern),
	}
}

// Match reports whether the pattern occurs as a contiguous substring of line.
// The empty pattern matches every line.
func (m *Matcher) Match(line string) bool {
	if m.pattern == "" {
		return true
	}
	if !m.ignoreCase {
		return strings.Contains(line, m.pattern)
	}
	_, ok := m.locateFold(line)
	return ok
}

// Locate returns the span of the first occurrence of the pattern in line.
// It returns false when the pattern is empty or does not occur.
func (m *Matcher) Locate(line string) (Span, bool) {
	if m.pattern == "" {
		return Span{}, false
	}
	if !m.ignoreCase {
		idx := strings.Index(line, m.pattern)
		if idx < 0 {
			return Span{}, false
		}
		return Span{Start: idx, End: idx + len(m.pattern)}, true
	}
	return m.locateFold(line)
}

func (m *Matcher) locateFold(line string) (Span, bool) {
	// Advance end so that line[start:end] holds exactly runeCount runes.
	start, end, count := 0, 0, 0
	for end < len(line) && count < m.runeCount {
		_, size := utf8.DecodeRuneInString(line[end:])
		end += size
		count++
	}
	if count < m.runeCount {
		return Span{}, false
	}

	for {
		if strings.EqualFold(line[start:end], m.pattern) {
			return Span{Start: start, End: end}, true
		}
		if end >= len(line) {
			return Span{}, false
		}
		_, size := utf8.DecodeRuneInString(line[start:])
		start += size
		_, size = utf8.DecodeRuneInString(line[end:])
		end += size
	}
}

// IsMatch reports whether pattern occurs in line.
func IsMatch(line, pattern string, ignoreCase bool) bool {
	return New(pattern, ignoreCase).Match(line)
}

// LocateFirst returns the span of the first occurrence of pattern in line.
func LocateFirst(line, pattern string, ignoreCase bool) (Span, bool) {
	return New(pattern, ignoreCase).Locate(line)
}
