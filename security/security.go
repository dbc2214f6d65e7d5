package security

import (
	"regexp"
)

// Credential shapes that keep a file out of the pack entirely. Heuristic,
// not a security boundary.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api_key|apikey|secret|token).{0,20}['|"][0-9a-zA-Z]{32,45}['|"]`),
	regexp.MustCompile(`ghp_[0-9a-zA-Z]{36}`),
	regexp.MustCompile(`sk_live_[0-9a-zA-Z]{24}`),
}

// IsSuspicious reports whether content looks like it contains a credential
// or access token.
func IsSuspicious(content string) bool {
	for _, re := range secretPatterns {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}
