package pipeline

import (
	"sort"

	"repopack/pipeline/models"
	"repopack/utils"
)

// changeHistoryDepth bounds how far back change frequencies are counted.
const changeHistoryDepth = 100

// OrderFiles sorts files for output. Inside a git repository the files
// changed most often in recent history sort last, putting the hottest code
// nearest the end of the context window; elsewhere, and as the tie-break,
// the order is lexicographic.
func OrderFiles(files []models.ProcessedFile, git *utils.GitOperations) {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})

	if git == nil || !git.IsRepo() {
		return
	}
	if counts := git.ChangeCounts(changeHistoryDepth); len(counts) > 0 {
		orderByChangeCounts(files, counts)
	}
}

// orderByChangeCounts stable-sorts by ascending change count, so files
// absent from the history keep their lexicographic position up front.
func orderByChangeCounts(files []models.ProcessedFile, counts map[string]int) {
	sort.SliceStable(files, func(i, j int) bool {
		return counts[files[i].RelativePath] < counts[files[j].RelativePath]
	})
}
