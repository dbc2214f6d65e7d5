package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"repopack/config"
)

// IntentTask is one prompt to generate an artifact for. A directory of task
// files yields one task per file; a single file or a raw string yields one.
type IntentTask struct {
	Name    string
	Content string
}

// collectIntentTasks resolves the --intent argument. The second return is
// true in bulk mode (a directory of task files), which forces per-task
// output naming even for a single task.
func collectIntentTasks(intentArg string) ([]IntentTask, bool, error) {
	if intentArg == "" {
		return nil, false, nil
	}

	info, err := os.Stat(intentArg)
	if err == nil && info.IsDir() {
		entries, err := os.ReadDir(intentArg)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read intent directory %s: %w", intentArg, err)
		}
		var tasks []IntentTask
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(intentArg, entry.Name())
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, false, fmt.Errorf("failed to read intent file %s: %w", path, err)
			}
			tasks = append(tasks, IntentTask{Name: fileStem(entry.Name()), Content: string(content)})
		}
		return tasks, true, nil
	}

	if err == nil && info.Mode().IsRegular() {
		content, readErr := os.ReadFile(intentArg)
		if readErr != nil {
			return nil, false, fmt.Errorf("failed to read intent file %s: %w", intentArg, readErr)
		}
		return []IntentTask{{Name: fileStem(filepath.Base(intentArg)), Content: string(content)}}, false, nil
	}

	// Raw string mode
	return []IntentTask{{Name: "default", Content: intentArg}}, false, nil
}

func fileStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// buildIntentHeader renders the prompt block prepended to the artifact for
// one task. Without a focus set the run is a survey pass asking the model to
// pick the command for the follow-up; with one it is a build pass over the
// assembled context.
func buildIntentHeader(taskContent string, focusPresent bool) string {
	if taskContent == "" {
		return ""
	}

	var header strings.Builder
	header.WriteString("\n")
	header.WriteString("<instruction>\n")
	header.WriteString(fmt.Sprintf("THE USER WANTS TO: %s\n\n", taskContent))

	if !focusPresent {
		header.WriteString("Attached is the SKELETON of the codebase.\n")
		header.WriteString("Your job is to analyze this structure and identify which files are crucial to implement the request.\n")
		header.WriteString("You are a Context Engineer. Your goal is to construct the CLI command for the next phase (Phase 2) that carefully isolates the relevant code while excluding noise.\n\n")
		header.WriteString("## Tool Reference: repopack\n")
		header.WriteString("repopack packs a codebase into a single context file.\n")
		header.WriteString("- `--focus \"pattern1,pattern2\"`: Critical files/directories to read in FULL TEXT. Supports globs (e.g., `internal/core/**`).\n")
		header.WriteString("- `--ignore \"pattern1,pattern2\"`: Files/directories to completely EXCLUDE from the pack (e.g., `tests/**`, `legacy/**`).\n\n")
		header.WriteString("## Strategy\n")
		header.WriteString("- Use globs (`**`) to select entire relevant directories.\n")
		header.WriteString("- Exclude unrelated modules or directories to save tokens.\n")
		header.WriteString("- Focus on interfaces and definitions first if the task is exploratory.\n\n")
		header.WriteString("## Task\n")
		header.WriteString("Based on the user's intent and the attached skeleton, return a SINGLE LINE containing the optimized `repopack` command arguments.\n")
		header.WriteString("Example: `--focus \"internal/auth/**,cmd/main.go\" --ignore \"tests/**\"`\n")
		header.WriteString("DO NOT provide explanations. Just the arguments.\n")
	} else {
		header.WriteString("Attached is the CONTEXT PACK.\n")
		header.WriteString("- Files marked 'mode=\"full\"' are the specific files you requested.\n")
		header.WriteString("- Files marked 'mode=\"skeleton\"' are compressed context to prevent hallucinations.\n")
		header.WriteString("Please implement the requested changes based on this context.\n")
	}

	header.WriteString("</instruction>\n")
	return header.String()
}

// styleExtension maps an output style to the artifact file extension.
func styleExtension(style string) string {
	switch style {
	case config.StyleMarkdown:
		return "md"
	case config.StyleJSON:
		return "json"
	case config.StylePlain:
		return "txt"
	default:
		return "xml"
	}
}

// multiOutputPath names the artifact for one task of a multi-intent run.
// When --output points at a directory the artifacts land inside it; when it
// points at a file its parent directory is used instead.
func multiOutputPath(outputFlag, taskName, style string) string {
	baseDir := "."
	if outputFlag != "" {
		if info, err := os.Stat(outputFlag); err == nil && info.IsDir() {
			baseDir = outputFlag
		} else if parent := filepath.Dir(outputFlag); parent != "" {
			baseDir = parent
		}
	}
	return filepath.Join(baseDir, fmt.Sprintf("repopack-%s.%s", taskName, styleExtension(style)))
}
