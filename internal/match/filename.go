package match

import (
	"path/filepath"
	"strings"

	"github.com/hasc-tools/ndaa-intake/internal/extract"
)

// FileGroup is one logical request recovered from a raw file listing:
// several on-disk copies of the same submission collapse into one group.
type FileGroup struct {
	// Key is the cleaned, lowercased logical name shared by the files.
	Key string
	// Files holds every path in first-seen order; Files[0] is the
	// representative copy that gets attached to the record.
	Files []string
}

// GroupFiles collapses near-duplicate filenames into logical requests.
// Filenames are stripped of extensions, copy markers and form boilerplate
// (via the extractor's filename cleanup) before grouping, so
// "Acme (1).pdf" and "Acme FY27 NDAA Request Form.docx" land in one group.
// Group order follows first appearance in the listing.
func GroupFiles(paths []string, fields *extract.FieldExtractor) []FileGroup {
	index := make(map[string]int)
	var groups []FileGroup

	for _, p := range paths {
		key := strings.ToLower(fields.NameFromFilename(filepath.Base(p)))
		if key == "" {
			key = strings.ToLower(filepath.Base(p))
		}
		if i, ok := index[key]; ok {
			groups[i].Files = append(groups[i].Files, p)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, FileGroup{Key: key, Files: []string{p}})
	}
	return groups
}
