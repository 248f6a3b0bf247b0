// Package pathmatch matches slash-separated archive and file paths against glob patterns.
//
// Patterns follow doublestar semantics:
//   - * matches any run of characters except /
//   - ** as a full path segment matches zero or more segments
//   - ? matches one character except /
//   - [...] and {a,b} match a character class and alternatives
//
// A pattern without meta characters matches only the identical path.
package pathmatch

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Match reports whether p matches the pattern.
func Match(pattern, p string) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}

	return doublestar.Match(pattern, Clean(p))
}

// Clean normalizes p to the form patterns are matched against:
// forward slashes, no leading "./" or "/", no trailing "/".
func Clean(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	p = strings.Trim(p, "/")

	if p == "" {
		return ""
	}

	return path.Clean(p)
}

// Matcher holds validated patterns for reuse across many paths.
type Matcher struct {
	patterns []string
}

// NewMatcher validates the given patterns into a reusable matcher.
func NewMatcher(patterns []string) (*Matcher, error) {
	matcher := &Matcher{patterns: make([]string, 0, len(patterns))}

	for _, p := range patterns {
		p = Clean(p)

		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("pattern %q: %w", p, doublestar.ErrBadPattern)
		}

		matcher.patterns = append(matcher.patterns, p)
	}

	return matcher, nil
}

// MatchAny reports whether p matches any of the patterns.
func (m *Matcher) MatchAny(p string) bool {
	p = Clean(p)

	for _, pattern := range m.patterns {
		// Patterns were validated in NewMatcher.
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
	}

	return false
}

// Patterns returns the normalized patterns.
func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// Len returns the number of patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}
