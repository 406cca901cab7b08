package repo

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	oerrors "github.com/repkg/cli/internal/errors"
)

// Entrypoints maps UI sections to glob pattern lists. Patterns are matched
// against version-directory-relative paths with forward slashes and no
// leading "./".
type Entrypoints map[ActionListSection][]string

// ParseEntrypoints converts the primitive config map into typed sections,
// rejecting unknown section tokens.
func ParseEntrypoints(raw map[string][]string, location string) (Entrypoints, error) {
	if raw == nil {
		return nil, nil
	}

	out := make(Entrypoints, len(raw))
	for token, patterns := range raw {
		section, err := ParseActionListSection(token)
		if err != nil {
			return nil, &oerrors.DetailError{
				Type:     "invalid config",
				Message:  err.Error(),
				Location: location,
				Cause:    err,
			}
		}
		out[section] = patterns
	}
	return out, nil
}

// HasPatterns reports whether any section carries at least one pattern.
func (e Entrypoints) HasPatterns() bool {
	for _, patterns := range e {
		if len(patterns) > 0 {
			return true
		}
	}
	return false
}

// Matcher classifies source files into sections. Compile it once per
// effective entrypoint map.
type Matcher struct {
	patterns Entrypoints
}

// CompileEntrypoints validates all patterns and returns a Matcher. A nil
// Entrypoints map compiles to a matcher that matches nothing.
//
// Matching uses doublestar semantics: a bare '*' never crosses a '/'
// boundary, so "scripts/*.lua" matches "scripts/foo.lua" but not
// "scripts/sub/foo.lua".
func CompileEntrypoints(e Entrypoints, location string) (*Matcher, error) {
	for section, patterns := range e {
		for _, pattern := range patterns {
			if !doublestar.ValidatePattern(pattern) {
				return nil, &oerrors.DetailError{
					Type:     "invalid config",
					Message:  fmt.Sprintf("invalid glob pattern %q in section %q", pattern, section),
					Location: location,
					Cause:    oerrors.ErrValidation,
				}
			}
		}
	}
	return &Matcher{patterns: e}, nil
}

// Match returns the sections whose pattern list matches relpath, in the
// fixed section order. A file matches a section if any of its patterns
// match; each section appears at most once.
func (m *Matcher) Match(relpath string) []ActionListSection {
	var sections []ActionListSection
	for _, section := range sectionOrder {
		for _, pattern := range m.patterns[section] {
			if doublestar.MatchUnvalidated(pattern, relpath) {
				sections = append(sections, section)
				break
			}
		}
	}
	return sections
}
