// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Matcher tests source paths against exclude patterns. A pattern matches
// either the file's base name or its slash-separated path.
type Matcher struct {
	patterns []compiledPattern
}

type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// NewMatcher compiles patterns. An invalid pattern is an error.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compiling exclude pattern %q: %w", pattern, err)
		}
		m.patterns = append(m.patterns, compiledPattern{pattern: pattern, glob: g})
	}
	return m, nil
}

// Match reports whether path is excluded. A nil Matcher excludes nothing.
func (m *Matcher) Match(path string) bool {
	if m == nil {
		return false
	}
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, p := range m.patterns {
		if p.glob.Match(base) || p.glob.Match(slashed) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns in the order given.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		out[i] = p.pattern
	}
	return out
}
