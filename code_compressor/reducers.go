package code_compressor

import (
	"regexp"
	"strings"
)

var (
	slashComments = regexp.MustCompile(`(?s)//.*?\n|/\*.*?\*/`)
	hashComments  = regexp.MustCompile(`#.*`)
)

// commentFamilies maps extensions to the comment syntax they use. Languages
// outside the map pass through RemoveComments untouched.
var commentFamilies = map[string]*regexp.Regexp{
	"rs":   slashComments,
	"ts":   slashComments,
	"tsx":  slashComments,
	"js":   slashComments,
	"jsx":  slashComments,
	"go":   slashComments,
	"java": slashComments,
	"cs":   slashComments,
	"c":    slashComments,
	"cpp":  slashComments,
	"h":    slashComments,
	"hpp":  slashComments,
	"py":   hashComments,
	"sh":   hashComments,
	"yaml": hashComments,
	"yml":  hashComments,
	"toml": hashComments,
	"rb":   hashComments,
	"pl":   hashComments,
}

// RemoveComments strips comments for the extension's comment family and
// reports whether a family was registered. Comment-shaped text inside string
// literals is stripped too; the trade-off is acceptable for LLM context.
func RemoveComments(content, ext string) (string, bool) {
	re, ok := commentFamilies[ext]
	if !ok {
		return content, false
	}
	return re.ReplaceAllString(content, ""), true
}

// RemoveEmptyLines drops every line that is empty after trimming whitespace.
func RemoveEmptyLines(content string) string {
	var kept []string
	for _, line := range splitLines(content) {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// splitLines splits on newlines without a phantom empty line when the
// content ends with a terminator.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
