package code_compressor

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"

	"repopack/embed_data"
)

// languageEntry pairs a grammar with the query selecting its definitional
// nodes.
type languageEntry struct {
	language func() *sitter.Language
	query    []byte
}

// registry maps extension tags to grammar/query pairs. New languages are
// supported by adding entries here, never by branching in Compress.
var registry = map[string]languageEntry{
	"rs":   {rust.GetLanguage, embed_data.RustQuery},
	"ts":   {tsx.GetLanguage, embed_data.TypescriptQuery},
	"tsx":  {tsx.GetLanguage, embed_data.TypescriptQuery},
	"js":   {javascript.GetLanguage, embed_data.JavascriptQuery},
	"jsx":  {javascript.GetLanguage, embed_data.JavascriptQuery},
	"py":   {python.GetLanguage, embed_data.PythonQuery},
	"go":   {golang.GetLanguage, embed_data.GoQuery},
	"java": {java.GetLanguage, embed_data.JavaQuery},
	"cs":   {csharp.GetLanguage, embed_data.CSharpQuery},
}

// Supported reports whether a structural grammar is registered for ext.
func Supported(ext string) bool {
	_, ok := registry[ext]
	return ok
}
