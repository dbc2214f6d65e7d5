package models

// ProcessedFile holds the final form of one source file after every
// configured transformation, plus the measurements taken on that form.
type ProcessedFile struct {
	RelativePath string
	Content      string
	CharCount    int
	TokenCount   int
	IsSkeleton   bool
}
