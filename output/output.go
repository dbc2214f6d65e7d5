package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"repopack/config"
	"repopack/pipeline/models"
)

// GitData carries the optional diff and log sections. A nil field means the
// section was not requested or git produced nothing; an empty string is
// still a present section.
type GitData struct {
	Diff *string
	Log  *string
}

// xmlEscaper escapes file content only; structural text stays verbatim.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Generate renders the ordered file set in the configured style.
func Generate(files []models.ProcessedFile, cfg *config.Config, git GitData) string {
	switch cfg.Output.Style {
	case config.StyleMarkdown:
		return generateMarkdown(files, cfg, git)
	case config.StyleJSON:
		return generateJSON(files, git)
	case config.StylePlain:
		return generatePlain(files, cfg, git)
	default:
		return generateXML(files, cfg, git)
	}
}

func generateXML(files []models.ProcessedFile, cfg *config.Config, git GitData) string {
	var out strings.Builder
	out.WriteString("<repopack>\n")

	if cfg.Output.HeaderText != "" {
		out.WriteString(fmt.Sprintf("<header>%s</header>\n", cfg.Output.HeaderText))
	}

	out.WriteString("<summary>\n")
	out.WriteString("  This file is a merged representation of the codebase.\n")
	if cfg.Output.InstructionFilePath != "" {
		if instruction, err := os.ReadFile(cfg.Output.InstructionFilePath); err == nil {
			out.WriteString(fmt.Sprintf("<instruction>%s</instruction>\n", string(instruction)))
		}
	}
	out.WriteString("</summary>\n")

	out.WriteString("<directory_structure>\n")
	for _, file := range files {
		out.WriteString(fmt.Sprintf("  %s\n", file.RelativePath))
	}
	out.WriteString("</directory_structure>\n")

	out.WriteString("<files>\n")
	for _, file := range files {
		mode := "full"
		if file.IsSkeleton {
			mode = "skeleton"
		}
		out.WriteString(fmt.Sprintf("<file path=%q mode=%q>\n", file.RelativePath, mode))
		out.WriteString(xmlEscaper.Replace(file.Content))
		out.WriteString("\n</file>\n")
	}
	out.WriteString("</files>\n")

	if git.Diff != nil {
		out.WriteString("<git_diff>\n")
		out.WriteString(*git.Diff)
		out.WriteString("\n</git_diff>\n")
	}
	if git.Log != nil {
		out.WriteString("<git_log>\n")
		out.WriteString(*git.Log)
		out.WriteString("\n</git_log>\n")
	}

	out.WriteString("</repopack>")
	return out.String()
}

func generateMarkdown(files []models.ProcessedFile, cfg *config.Config, git GitData) string {
	var out strings.Builder

	if cfg.Output.HeaderText != "" {
		out.WriteString(fmt.Sprintf("# %s\n\n", cfg.Output.HeaderText))
	}

	out.WriteString("# File Summary\n\n")
	out.WriteString("This file is a merged representation of the codebase.\n\n")

	out.WriteString("# Directory Structure\n\n```\n")
	for _, file := range files {
		out.WriteString(file.RelativePath + "\n")
	}
	out.WriteString("```\n\n")

	out.WriteString("# Files\n\n")
	for _, file := range files {
		mode := "FULL TEXT"
		if file.IsSkeleton {
			mode = "SKELETON (Context Only)"
		}
		out.WriteString(fmt.Sprintf("## File: %s [%s]\n", file.RelativePath, mode))
		out.WriteString(fmt.Sprintf("```%s\n", fenceTag(file.RelativePath, file.Content)))
		out.WriteString(file.Content)
		out.WriteString("\n```\n\n")
	}

	if git.Diff != nil {
		out.WriteString("# Git Diff\n\n```diff\n")
		out.WriteString(*git.Diff)
		out.WriteString("\n```\n\n")
	}
	if git.Log != nil {
		out.WriteString("# Git Log\n\n")
		out.WriteString(*git.Log)
		out.WriteString("\n\n")
	}

	return out.String()
}

func generatePlain(files []models.ProcessedFile, cfg *config.Config, git GitData) string {
	var out strings.Builder
	separator := strings.Repeat("=", 40)
	rule := strings.Repeat("-", 20)

	out.WriteString(fmt.Sprintf("%s\nREPOPACK OUTPUT\n%s\n\n", separator, separator))

	if cfg.Output.HeaderText != "" {
		out.WriteString(fmt.Sprintf("HEADER\n%s\n\n", cfg.Output.HeaderText))
	}

	for _, file := range files {
		out.WriteString(fmt.Sprintf("File: %s\n%s\n", file.RelativePath, rule))
		out.WriteString(file.Content)
		out.WriteString("\n\n")
	}

	if git.Diff != nil {
		out.WriteString(fmt.Sprintf("GIT DIFF\n%s\n%s\n\n", rule, *git.Diff))
	}
	if git.Log != nil {
		out.WriteString(fmt.Sprintf("GIT LOG\n%s\n%s\n\n", rule, *git.Log))
	}

	return out.String()
}

func generateJSON(files []models.ProcessedFile, git GitData) string {
	payload := struct {
		Files   map[string]string `json:"files"`
		GitDiff *string           `json:"git_diff"`
		GitLog  *string           `json:"git_log"`
	}{
		Files:   make(map[string]string, len(files)),
		GitDiff: git.Diff,
		GitLog:  git.Log,
	}
	for _, file := range files {
		payload.Files[file.RelativePath] = file.Content
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// fenceTag picks the language tag for a markdown code fence. The extension
// wins; extension-less files go through lexer detection so READMEs and
// scripts still highlight.
func fenceTag(path, content string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext != "" {
		return ext
	}
	if lexer := lexers.Analyse(content); lexer != nil {
		if aliases := lexer.Config().Aliases; len(aliases) > 0 {
			return aliases[0]
		}
	}
	return ""
}
