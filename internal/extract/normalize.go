package extract

import (
	"regexp"
	"strings"
)

var (
	reRunsOfBlank = regexp.MustCompile(`[ \t]+`)
	reBlankLines  = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText produces the cleaned search surface for the heuristics:
// horizontal whitespace runs collapse to single spaces and blank-line runs
// collapse to one blank line, while line breaks themselves survive. The
// label captures rely on "rest of line" semantics, so newlines must not be
// flattened away here.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\f", "\n")
	s = reRunsOfBlank.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	s = strings.Join(lines, "\n")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// collapseSpace flattens all whitespace (including newlines) to single
// spaces; used when a captured block is rendered as one field value.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
