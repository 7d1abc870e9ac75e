package core

import (
	"path/filepath"
	"strings"
)

// PathMatcher decides whether a path falls under any of a configured
// set of ignored paths. Matching is done on path components, never on
// raw string prefixes, so an ignore rule for /foo/bar does not match
// /foo/barbaz. The matcher performs no I/O.
type PathMatcher struct {
	prefixes [][]string
}

func NewPathMatcher(ignored []string) PathMatcher {
	matcher := PathMatcher{}
	for _, path := range ignored {
		components := splitComponents(path)
		if len(components) == 0 {
			continue
		}
		matcher.prefixes = append(matcher.prefixes, components)
	}
	return matcher
}

// IsIgnored reports whether path equals, or is a descendant of, any
// ignored path.
func (m PathMatcher) IsIgnored(path string) bool {
	components := splitComponents(path)
	for _, prefix := range m.prefixes {
		if hasComponentPrefix(components, prefix) {
			return true
		}
	}
	return false
}

func splitComponents(path string) []string {
	cleaned := filepath.Clean(strings.TrimSpace(path))
	if cleaned == "." || cleaned == "" {
		return nil
	}
	parts := strings.Split(cleaned, string(filepath.Separator))
	components := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		components = append(components, part)
	}
	if filepath.IsAbs(cleaned) {
		components = append([]string{string(filepath.Separator)}, components...)
	}
	return components
}

func hasComponentPrefix(components []string, prefix []string) bool {
	if len(prefix) > len(components) {
		return false
	}
	for i, part := range prefix {
		if components[i] != part {
			return false
		}
	}
	return true
}
