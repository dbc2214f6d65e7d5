package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsBinaryDetectsNulByte tests the NUL sniff within the first 8192 bytes
func TestIsBinaryDetectsNulByte(t *testing.T) {
	assert.True(t, IsBinary([]byte{0x89, 'P', 'N', 'G', 0x00, 0x1a}))
	assert.False(t, IsBinary([]byte("plain text content\n")))
	assert.False(t, IsBinary(nil))
}

// TestIsBinaryIgnoresNulBeyondSniffWindow tests that only the prefix is inspected
func TestIsBinaryIgnoresNulBeyondSniffWindow(t *testing.T) {
	content := append(bytes.Repeat([]byte{'a'}, 8192), 0x00)

	assert.False(t, IsBinary(content))
}

// TestDecodeLossy tests UTF-8 passthrough and replacement of invalid sequences
func TestDecodeLossy(t *testing.T) {
	assert.Equal(t, "héllo", DecodeLossy([]byte("héllo")))

	decoded := DecodeLossy([]byte{'a', 0xff, 'b'})
	assert.True(t, strings.Contains(decoded, "�"))
	assert.True(t, strings.HasPrefix(decoded, "a"))
	assert.True(t, strings.HasSuffix(decoded, "b"))
}
