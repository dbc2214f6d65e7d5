package pipeline

// ShouldCompress decides per file whether to skeletonize. With a focus set
// present the logic inverts: focused files stay full text and everything
// else becomes skeleton, regardless of the global compression switch.
func ShouldCompress(focusPresent, focusMatch, globalCompress bool) bool {
	if focusPresent {
		return !focusMatch
	}
	return globalCompress
}
