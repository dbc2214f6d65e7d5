package utils

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GitOperations handles git-related operations anchored to a working directory.
// Everything except Clone is best-effort: callers treat failures as "no data".
type GitOperations struct {
	workingDir string
}

// NewGitOperations creates a new GitOperations instance
func NewGitOperations(workingDir string) *GitOperations {
	return &GitOperations{workingDir: workingDir}
}

// IsRepo reports whether the working directory is inside a git work tree.
func (g *GitOperations) IsRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = g.workingDir
	return cmd.Run() == nil
}

// Clone performs a shallow clone of url into target. branch may be empty.
func (g *GitOperations) Clone(ctx context.Context, url, target, branch string) error {
	args := []string{"clone", "--depth", "1"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, target)
	cmd := exec.CommandContext(ctx, "git", args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}
	return nil
}

// Diff returns the diff of the work tree against HEAD.
func (g *GitOperations) Diff() (string, error) {
	cmd := exec.Command("git", "diff", "HEAD")
	cmd.Dir = g.workingDir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get git diff: %w", err)
	}
	return string(output), nil
}

// Log returns the last limit commits, one line per commit.
func (g *GitOperations) Log(limit int) (string, error) {
	cmd := exec.Command("git", "log", "-n", fmt.Sprintf("%d", limit), "--pretty=format:%h - %an, %ar : %s")
	cmd.Dir = g.workingDir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get git log: %w", err)
	}
	return string(output), nil
}

// ChangeCounts returns how often each path appeared in the name-only logs of
// the last limit commits. Any git failure yields an empty map.
func (g *GitOperations) ChangeCounts(limit int) map[string]int {
	counts := make(map[string]int)
	cmd := exec.Command("git", "log", "--name-only", "--format=", "-n", fmt.Sprintf("%d", limit))
	cmd.Dir = g.workingDir
	output, err := cmd.Output()
	if err != nil {
		return counts
	}
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			counts[line]++
		}
	}
	return counts
}
