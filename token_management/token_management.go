package token_management

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
)

// CountTokens returns the cl100k_base token count of content. When the BPE
// data cannot be loaded (for example offline with an empty cache) it
// degrades to a bytes/4 estimate for the rest of the process.
func CountTokens(content string) int {
	encoderOnce.Do(func() {
		if enc, err := tiktoken.GetEncoding("cl100k_base"); err == nil {
			encoder = enc
		}
	})
	if encoder == nil {
		return (len(content) + 3) / 4
	}
	return len(encoder.Encode(content, []string{"all"}, nil))
}

// CountChars returns the number of Unicode scalar values in content.
func CountChars(content string) int {
	return utf8.RuneCountInString(content)
}
