package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCompileSplitsAndTrims tests that comma-separated lists are split and trimmed
func TestCompileSplitsAndTrims(t *testing.T) {
	set := Compile(" src/** , *.md ")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Matches("src/core/engine.rs"))
	assert.True(t, set.Matches("README.md"))
	assert.False(t, set.Matches("docs/README.txt"))
}

// TestCompileSkipsMalformedPatterns tests that one bad glob does not abort the set
func TestCompileSkipsMalformedPatterns(t *testing.T) {
	set := Compile("[,*.go")

	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Matches("main.go"))
}

// TestRecursiveWildcard tests ** matching across directory boundaries
func TestRecursiveWildcard(t *testing.T) {
	set := Compile("**/*.log")

	assert.True(t, set.Matches("out.log"))
	assert.True(t, set.Matches("a/b/c/out.log"))
	assert.False(t, set.Matches("a/b/c/out.txt"))
}

// TestSingleSegmentWildcards tests that * and ? stay within one path segment
func TestSingleSegmentWildcards(t *testing.T) {
	set := Compile("*.log")

	assert.True(t, set.Matches("out.log"))
	assert.False(t, set.Matches("logs/out.log"))

	set = Compile("file?.txt")
	assert.True(t, set.Matches("file1.txt"))
	assert.False(t, set.Matches("file12.txt"))
}

// TestEmptyAndNilSets tests that empty input and nil receivers match nothing
func TestEmptyAndNilSets(t *testing.T) {
	set := Compile("")
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Matches("anything"))

	var nilSet *Set
	assert.Equal(t, 0, nilSet.Len())
	assert.False(t, nilSet.Matches("anything"))
}

// TestCompileList tests building a set from an already-split slice
func TestCompileList(t *testing.T) {
	set := CompileList([]string{"vendor/**", "", "  "})

	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Matches("vendor/lib/mod.go"))
	assert.False(t, set.Matches("src/mod.go"))
}
