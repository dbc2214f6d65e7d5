package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"repopack/constants/lipgloss"
)

// ConfirmPrompt asks the user a yes/no question and reads the answer from
// reader. Anything other than "y" or "yes" (case-insensitive) declines, and
// EOF counts as a decline rather than an error.
func ConfirmPrompt(reader *bufio.Reader, question string) (bool, error) {
	fmt.Print(lipgloss.Cyan.Render(fmt.Sprintf("%s (y/N): ", question)))

	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}
