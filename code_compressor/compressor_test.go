package code_compressor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test overlapping ranges fold into a minimal disjoint sequence
func TestMergeRanges_Overlapping(t *testing.T) {
	merged := mergeRanges([]byteRange{
		{0, 10},
		{5, 15},
		{20, 25},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, byteRange{0, 15}, merged[0])
	assert.Equal(t, byteRange{20, 25}, merged[1])
}

// Test touching ranges merge and unsorted input is handled
func TestMergeRanges_TouchingAndUnsorted(t *testing.T) {
	merged := mergeRanges([]byteRange{
		{20, 25},
		{5, 9},
		{0, 5},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, byteRange{0, 9}, merged[0])
	assert.Equal(t, byteRange{20, 25}, merged[1])
}

// Test a range nested inside another disappears into it
func TestMergeRanges_Nested(t *testing.T) {
	merged := mergeRanges([]byteRange{
		{0, 100},
		{10, 30},
		{40, 60},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, byteRange{0, 100}, merged[0])
}

// Test unsupported extensions are reported, not treated as failures
func TestCompress_UnsupportedLanguage(t *testing.T) {
	assert.False(t, Supported("txt"))
	result := Compress(context.Background(), "just some text", "txt")
	assert.Equal(t, StatusUnsupported, result.Status)
	assert.NoError(t, result.Err)
}

// Test every registered extension is reported as supported
func TestSupportedExtensions(t *testing.T) {
	for _, ext := range []string{"rs", "ts", "tsx", "js", "jsx", "py", "go", "java", "cs"} {
		assert.True(t, Supported(ext), ext)
	}
	assert.False(t, Supported("md"))
}

// Test Go compression keeps declarations and drops imports
func TestCompress_GoSource(t *testing.T) {
	source := `package demo

import "fmt"

// Greet prints a greeting.
func Greet(name string) {
	fmt.Println("hi", name)
}

type Greeter struct {
	Name string
}

func (g Greeter) Do() {
	fmt.Println(g.Name)
}
`

	result := Compress(context.Background(), source, "go")
	require.Equal(t, StatusApplied, result.Status)

	assert.Contains(t, result.Content, "func Greet(name string)")
	assert.Contains(t, result.Content, "type Greeter struct")
	assert.Contains(t, result.Content, "func (g Greeter) Do()")
	assert.NotContains(t, result.Content, `import "fmt"`)
	assert.Contains(t, result.Content, "[implementation details hidden]")
}

// Test Python classes are kept whole with their methods inside
func TestCompress_PythonSource(t *testing.T) {
	source := "import os\n\n\nclass Processor:\n    def run(self):\n        return os.name\n\n\ndef helper():\n    return 1\n"

	result := Compress(context.Background(), source, "py")
	require.Equal(t, StatusApplied, result.Status)

	assert.Contains(t, result.Content, "class Processor:")
	assert.Contains(t, result.Content, "def run(self):")
	assert.Contains(t, result.Content, "def helper():")
	assert.NotContains(t, result.Content, "import os")
}

// Test Rust structs and impl blocks survive compression
func TestCompress_RustSource(t *testing.T) {
	source := "use std::fmt;\n\nstruct Point {\n    x: i32,\n}\n\nimpl Point {\n    fn origin() -> Self {\n        Point { x: 0 }\n    }\n}\n"

	result := Compress(context.Background(), source, "rs")
	require.Equal(t, StatusApplied, result.Status)

	assert.Contains(t, result.Content, "struct Point")
	assert.Contains(t, result.Content, "impl Point")
	assert.NotContains(t, result.Content, "use std::fmt;")
}

// Test JavaScript class bodies merge with their nested methods
func TestCompress_JavaScriptSource(t *testing.T) {
	source := "const limit = 10;\n\nclass Store {\n  get(id) {\n    return this.items[id];\n  }\n}\n\nfunction helper() {\n  return 42;\n}\n"

	result := Compress(context.Background(), source, "js")
	require.Equal(t, StatusApplied, result.Status)

	assert.Contains(t, result.Content, "class Store")
	assert.Contains(t, result.Content, "function helper()")
	assert.NotContains(t, result.Content, "const limit")
}

// Test TypeScript interfaces and type aliases are kept
func TestCompress_TypeScriptSource(t *testing.T) {
	source := "import { x } from \"./x\";\n\ninterface User {\n  id: number;\n}\n\ntype UserId = number;\n\nclass UserManager {\n  getUser(id: number): User {\n    return { id };\n  }\n}\n"

	result := Compress(context.Background(), source, "ts")
	require.Equal(t, StatusApplied, result.Status)

	assert.Contains(t, result.Content, "interface User")
	assert.Contains(t, result.Content, "type UserId = number")
	assert.Contains(t, result.Content, "class UserManager")
	assert.NotContains(t, result.Content, "import { x }")
}

// Test zero matches keep the content intact instead of emptying the file
func TestCompress_NoMatchesKeepsOriginal(t *testing.T) {
	source := "package demo\n\nvar version = \"1.0\"\n"

	result := Compress(context.Background(), source, "go")
	require.Equal(t, StatusApplied, result.Status)
	assert.Equal(t, source, result.Content)
}

// Test compressing an already compressed file changes nothing
func TestCompress_Idempotent(t *testing.T) {
	source := "def a():\n    return 1\n"

	first := Compress(context.Background(), source, "py")
	require.Equal(t, StatusApplied, first.Status)

	second := Compress(context.Background(), first.Content, "py")
	require.Equal(t, StatusApplied, second.Status)
	assert.Equal(t, first.Content, second.Content)
}
