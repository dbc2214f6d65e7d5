package code_compressor

import (
	"context"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"repopack/utils"
)

// elisionMarker replaces the source stretches between kept definitions.
const elisionMarker = "\n// ... [implementation details hidden] ...\n"

// Status tags the outcome of a compression attempt.
type Status int

const (
	// StatusUnsupported means no grammar is registered for the language.
	StatusUnsupported Status = iota
	// StatusApplied means compression ran and Content holds the result.
	StatusApplied
	// StatusFailed means the parse or query errored and no usable content
	// was produced.
	StatusFailed
)

// Result is the tagged outcome of Compress. Unsupported and Failed both
// mean the caller keeps the original content unchanged.
type Result struct {
	Status  Status
	Content string
	Err     error
}

type byteRange struct {
	start, end uint32
}

// Compress reduces source content to its definitional surface: the byte
// ranges of every query match are kept whole and everything between them is
// replaced with an elision marker. Zero matches keep the content intact
// rather than emptying the file.
func Compress(ctx context.Context, content, ext string) Result {
	entry, ok := registry[ext]
	if !ok {
		return Result{Status: StatusUnsupported}
	}

	lang := entry.language()
	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	source := []byte(content)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return Result{Status: StatusFailed, Err: err}
	}

	query, err := sitter.NewQuery(entry.query, lang)
	if err != nil {
		return Result{Status: StatusFailed, Err: err}
	}

	cursor := sitter.NewQueryCursor()
	cursor.Exec(query, tree.RootNode())

	var ranges []byteRange
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			ranges = append(ranges, byteRange{capture.Node.StartByte(), capture.Node.EndByte()})
		}
	}

	if len(ranges) == 0 {
		return Result{Status: StatusApplied, Content: content}
	}

	var builder strings.Builder
	for i, r := range mergeRanges(ranges) {
		if i > 0 {
			builder.WriteString(elisionMarker)
		}
		chunk := utils.DecodeLossy(source[r.start:r.end])
		builder.WriteString(strings.TrimSpace(chunk))
	}

	return Result{Status: StatusApplied, Content: builder.String()}
}

// mergeRanges sorts by start offset and folds overlapping or touching
// ranges into a minimal disjoint sequence. A range nested inside another
// disappears into it, so a method never escapes its class.
func mergeRanges(ranges []byteRange) []byteRange {
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })

	merged := make([]byteRange, 0, len(ranges))
	current := ranges[0]
	for _, next := range ranges[1:] {
		if next.start <= current.end {
			if next.end > current.end {
				current.end = next.end
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
