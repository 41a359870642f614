// Package config holds the immutable search request built from the command line.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ColorMode controls whether matched spans are styled.
type ColorMode int

const (
	// ColorAuto styles output only when the destination is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways styles output unconditionally.
	ColorAlways
	// ColorNever never styles output.
	ColorNever
)

// String returns the flag spelling of the color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts a --color value into a ColorMode.
// Matching is case-insensitive; surrounding whitespace is ignored.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", s)
	}
}

// SearchRequest is the configuration for one invocation.
// It is created once from CLI input and treated as read-only afterwards.
type SearchRequest struct {
	// Pattern is the literal substring to search for
	Pattern string

	// Path is the file or directory to search
	Path string

	// IgnoreCase enables case-insensitive matching
	IgnoreCase bool

	// LineNumbers prefixes each matching line with its 1-based line number
	LineNumbers bool

	// Recursive allows a directory target to be walked
	Recursive bool

	// CountOnly prints one path:count summary per scanned file instead of lines
	CountOnly bool

	// FilesWithMatches prints only the paths of files containing a match
	FilesWithMatches bool

	// Color selects when the first match on a line is highlighted
	Color ColorMode

	// Include restricts recursive scans to files whose base name matches one of these globs
	Include []string

	// ExcludeDirs lists globs of directory base names that recursion does not enter
	ExcludeDirs []string

	// NoMessages suppresses diagnostics about skipped files and entries
	NoMessages bool
}

// DefaultSearchRequest returns a SearchRequest with default flag values.
func DefaultSearchRequest() *SearchRequest {
	return &SearchRequest{
		Color: ColorAuto,
	}
}

// Validate checks the request for values that cannot be searched.
// An empty pattern is valid and matches every line. A pattern that is not valid
// UTF-8 is rejected, since lines are decoded as UTF-8 and could never contain it.
func (r *SearchRequest) Validate() error {
	if !utf8.ValidString(r.Pattern) {
		return fmt.Errorf("pattern is not valid UTF-8")
	}
	if r.Path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	switch r.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %d", int(r.Color))
	}

	for _, g := range r.Include {
		if strings.TrimSpace(g) == "" {
			return fmt.Errorf("include glob cannot be empty")
		}
	}
	for _, g := range r.ExcludeDirs {
		if strings.TrimSpace(g) == "" {
			return fmt.Errorf("exclude-dir glob cannot be empty")
		}
	}

	return nil
}
