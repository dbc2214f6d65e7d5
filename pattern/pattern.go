package pattern

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Set is a compiled list of glob patterns matched against slash-separated
// relative paths. Supports `**` across directories and `*`/`?` within a
// single segment.
type Set struct {
	globs []string
}

// Compile builds a Set from a comma-separated pattern list. Malformed
// patterns are skipped so a single bad glob never aborts discovery.
func Compile(list string) *Set {
	return CompileList(strings.Split(list, ","))
}

// CompileList builds a Set from already-split patterns, trimming whitespace
// and skipping blanks and malformed globs.
func CompileList(patterns []string) *Set {
	s := &Set{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			continue
		}
		s.globs = append(s.globs, p)
	}
	return s
}

// Matches reports whether any compiled pattern matches relPath.
func (s *Set) Matches(relPath string) bool {
	if s == nil {
		return false
	}
	for _, g := range s.globs {
		if ok, err := doublestar.Match(g, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

// Len reports how many patterns survived compilation.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.globs)
}
