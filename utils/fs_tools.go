package utils

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const binarySniffLen = 8192

// IsBinary reports whether content looks binary: a NUL byte within the
// first 8192 bytes.
func IsBinary(content []byte) bool {
	n := len(content)
	if n > binarySniffLen {
		n = binarySniffLen
	}
	return bytes.IndexByte(content[:n], 0) >= 0
}

// DecodeLossy converts raw bytes to a string, replacing invalid UTF-8
// sequences with the replacement rune.
func DecodeLossy(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
