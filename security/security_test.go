package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGithubTokenDetected tests that a GitHub personal access token shape trips the check
func TestGithubTokenDetected(t *testing.T) {
	content := "GITHUB_TOKEN=ghp_" + strings.Repeat("a1B2", 9)

	assert.True(t, IsSuspicious(content))
}

// TestShortGithubTokenIgnored tests that fewer than 36 trailing characters do not match
func TestShortGithubTokenIgnored(t *testing.T) {
	content := "token=ghp_" + strings.Repeat("a", 35)

	assert.False(t, IsSuspicious(content))
}

// TestStripeLiveKeyDetected tests the sk_live_ key shape
func TestStripeLiveKeyDetected(t *testing.T) {
	content := "const key = sk_live_" + strings.Repeat("Xy1Z", 6)

	assert.True(t, IsSuspicious(content))
}

// TestQuotedApiKeyDetected tests the quoted api_key assignment shape, case-insensitively
func TestQuotedApiKeyDetected(t *testing.T) {
	key := strings.Repeat("0a", 16) // 32 chars
	assert.True(t, IsSuspicious(`api_key = "`+key+`"`))
	assert.True(t, IsSuspicious(`API_KEY = '`+key+`'`))
	assert.True(t, IsSuspicious(`secret: "`+key+`"`))
}

// TestOrdinaryCodeIsClean tests that regular source content passes
func TestOrdinaryCodeIsClean(t *testing.T) {
	content := `func main() {
	fmt.Println("hello")
}
`
	assert.False(t, IsSuspicious(content))
}
