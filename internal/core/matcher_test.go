package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathMatcherExactMatch(t *testing.T) {
	matcher := NewPathMatcher([]string{"/data/cache"})
	assert.True(t, matcher.IsIgnored("/data/cache"))
}

func TestPathMatcherDescendant(t *testing.T) {
	matcher := NewPathMatcher([]string{"/data/cache"})
	assert.True(t, matcher.IsIgnored("/data/cache/a/b/c.txt"))
}

func TestPathMatcherComponentBoundary(t *testing.T) {
	// /foo/barbaz must not match the rule /foo/bar.
	matcher := NewPathMatcher([]string{"/foo/bar"})
	assert.False(t, matcher.IsIgnored("/foo/barbaz"))
	assert.False(t, matcher.IsIgnored("/foo/barbaz/file.txt"))
	assert.True(t, matcher.IsIgnored("/foo/bar/file.txt"))
}

func TestPathMatcherAncestorNotIgnored(t *testing.T) {
	matcher := NewPathMatcher([]string{"/data/cache/deep"})
	assert.False(t, matcher.IsIgnored("/data/cache"))
	assert.False(t, matcher.IsIgnored("/data"))
}

func TestPathMatcherMultipleRules(t *testing.T) {
	matcher := NewPathMatcher([]string{"/tmp/keep", "/var/log"})
	assert.True(t, matcher.IsIgnored("/var/log/syslog"))
	assert.True(t, matcher.IsIgnored("/tmp/keep/me"))
	assert.False(t, matcher.IsIgnored("/tmp/other"))
}

func TestPathMatcherNormalizesInput(t *testing.T) {
	matcher := NewPathMatcher([]string{"/data//cache/"})
	assert.True(t, matcher.IsIgnored("/data/cache/x"))
	assert.True(t, matcher.IsIgnored("/data/./cache"))
}

func TestPathMatcherEmptyRules(t *testing.T) {
	matcher := NewPathMatcher(nil)
	assert.False(t, matcher.IsIgnored("/anything"))
}
