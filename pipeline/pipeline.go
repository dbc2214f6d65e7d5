package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"repopack/code_compressor"
	"repopack/constants/lipgloss"
	"repopack/pattern"
	"repopack/pipeline/models"
	"repopack/security"
	"repopack/token_management"
	"repopack/utils"
)

// Options carries the per-run switches the workers need. BaseRoot anchors
// relative paths; Focus inverts the compression policy when present.
type Options struct {
	BaseRoot         string
	Compress         bool
	RemoveComments   bool
	RemoveEmptyLines bool
	ShowLineNumbers  bool
	SecurityCheck    bool
	Focus            *pattern.Set
	FocusPresent     bool
	Cache            *code_compressor.Cache
	Verbose          bool
}

// Run processes every path concurrently and returns the collected results.
// Files that cannot be read, look binary, or trip the security check are
// dropped without failing the run.
func Run(ctx context.Context, paths []string, opts Options) []models.ProcessedFile {
	collector := NewCollector()
	var wg sync.WaitGroup

	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			if file, ok := processOne(ctx, path, opts); ok {
				collector.Append(file)
			}
		}(path)
	}

	wg.Wait()
	return collector.Drain()
}

// processOne runs the transformation chain for a single file. Line numbers
// are applied last so they match what the reader sees; counts are taken on
// the final content.
func processOne(ctx context.Context, path string, opts Options) (models.ProcessedFile, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if opts.Verbose {
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Skipping unreadable file %s: %v", path, err)))
		}
		return models.ProcessedFile{}, false
	}
	if utils.IsBinary(raw) {
		return models.ProcessedFile{}, false
	}

	content := utils.DecodeLossy(raw)
	if opts.SecurityCheck && security.IsSuspicious(content) {
		if opts.Verbose {
			fmt.Println(lipgloss.Yellow.Render("Excluded suspicious file: " + path))
		}
		return models.ProcessedFile{}, false
	}

	relPath := path
	if rel, err := filepath.Rel(opts.BaseRoot, path); err == nil {
		relPath = rel
	}
	relPath = filepath.ToSlash(relPath)

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	// The skeleton flag records the decision, not whether the grammar
	// managed to shrink anything.
	skeleton := ShouldCompress(opts.FocusPresent, opts.Focus.Matches(relPath), opts.Compress)
	if skeleton {
		if result := code_compressor.CompressWithCache(ctx, opts.Cache, content, ext); result.Status == code_compressor.StatusApplied {
			content = result.Content
		}
	}

	if opts.RemoveComments {
		content, _ = code_compressor.RemoveComments(content, ext)
	}
	if opts.RemoveEmptyLines {
		content = code_compressor.RemoveEmptyLines(content)
	}
	if opts.ShowLineNumbers {
		content = numberLines(content)
	}

	return models.ProcessedFile{
		RelativePath: relPath,
		Content:      content,
		CharCount:    token_management.CountChars(content),
		TokenCount:   token_management.CountTokens(content),
		IsSkeleton:   skeleton,
	}, true
}

// numberLines prefixes each line with a right-aligned 1-based number.
func numberLines(content string) string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%4d: %s", i+1, line)
	}
	return strings.Join(lines, "\n")
}
