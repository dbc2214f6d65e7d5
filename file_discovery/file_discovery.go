package file_discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"repopack/constants/lipgloss"
	"repopack/pattern"
)

// CustomIgnoreName is the per-root ignore file honored when default
// patterns are enabled.
const CustomIgnoreName = ".repopackignore"

// Rules bundles the layered filters applied during the walk. Include
// overrides defeat every other layer; explicit deny globs are checked
// in-process against base-root-relative paths so they hold even where an
// ignore back-end would not apply them.
type Rules struct {
	UseGitignore       bool
	UseDefaultPatterns bool
	Deny               *pattern.Set
	Include            *pattern.Set
	Verbose            bool
}

type walkState struct {
	baseRoot  string
	root      string
	rules     Rules
	gitignore gitignore.IgnoreParser
	custom    gitignore.IgnoreParser
	seen      map[string]struct{}
	files     []string
}

// DiscoverFiles walks every root and returns the deduplicated file paths
// that survive the layered rules, sorted for determinism. Unreadable roots
// are skipped; it fails only when not a single root is readable.
func DiscoverFiles(roots []string, baseRoot string, rules Rules) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	walked := false

	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			if rules.Verbose {
				fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Skipping unreadable root %s: %v", root, err)))
			}
			continue
		}
		walked = true

		state := &walkState{
			baseRoot: baseRoot,
			root:     root,
			rules:    rules,
			seen:     seen,
		}
		if rules.UseGitignore {
			if parser, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
				state.gitignore = parser
			}
		}
		if rules.UseDefaultPatterns {
			if parser, err := gitignore.CompileIgnoreFile(filepath.Join(root, CustomIgnoreName)); err == nil {
				state.custom = parser
			}
		}

		_ = filepath.WalkDir(root, state.visit)
		files = append(files, state.files...)
	}

	if !walked {
		return nil, fmt.Errorf("no readable root directory among: %s", strings.Join(roots, ", "))
	}

	sort.Strings(files)
	return files, nil
}

func (s *walkState) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		if s.rules.Verbose {
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Error walking %s: %v", path, err)))
		}
		return nil
	}
	if path == s.root {
		return nil
	}

	relRoot, relErr := filepath.Rel(s.root, path)
	if relErr != nil {
		return nil
	}
	relRoot = filepath.ToSlash(relRoot)

	relBase := relRoot
	if rel, relErr := filepath.Rel(s.baseRoot, path); relErr == nil {
		relBase = filepath.ToSlash(rel)
	}

	if d.IsDir() {
		if d.Name() == ".git" {
			return fs.SkipDir
		}
		// With include overrides in play no other directory can be
		// pruned; a pattern may resurrect files arbitrarily deep.
		if s.rules.Include.Len() > 0 {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		if s.gitignore != nil && s.gitignore.MatchesPath(relRoot) {
			return fs.SkipDir
		}
		if s.custom != nil && s.custom.MatchesPath(relRoot) {
			return fs.SkipDir
		}
		return nil
	}

	if !d.Type().IsRegular() {
		return nil
	}

	// Include overrides defeat every deny layer below.
	if s.rules.Include.Matches(relBase) {
		s.accept(path)
		return nil
	}
	if hasHiddenSegment(relRoot) {
		return nil
	}
	if s.gitignore != nil && s.gitignore.MatchesPath(relRoot) {
		return nil
	}
	if s.custom != nil && s.custom.MatchesPath(relRoot) {
		return nil
	}
	if s.rules.Deny.Matches(relBase) {
		return nil
	}

	s.accept(path)
	return nil
}

func (s *walkState) accept(path string) {
	if _, dup := s.seen[path]; dup {
		return
	}
	s.seen[path] = struct{}{}
	s.files = append(s.files, path)
}

// hasHiddenSegment reports whether any element of the slash-relative path
// is dot-prefixed. Parent references are not hidden.
func hasHiddenSegment(relPath string) bool {
	for _, segment := range strings.Split(relPath, "/") {
		if len(segment) > 1 && strings.HasPrefix(segment, ".") && segment != ".." {
			return true
		}
	}
	return false
}
