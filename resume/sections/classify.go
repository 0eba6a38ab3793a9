package sections

import (
	"regexp"
	"strings"

	"resume-parser/resume/layout"
)

var pageFooterRE = regexp.MustCompile(`(?i)^page\s+\d+\s+(?:of|/)\s*\d+$`)

// IsPageFooter reports whether a line is a "page N of M" footer.
func IsPageFooter(text string) bool {
	return pageFooterRE.MatchString(strings.TrimSpace(text))
}

type columnSide int

const (
	leftColumn columnSide = iota
	rightColumn
)

// Split assigns lines to sections. Each column runs its own small state
// machine: a matching heading switches that column's active section, other
// lines append to it, and lines seen before the column's first heading are
// dropped. Page footers are skipped outright.
func Split(lines []layout.Line) map[Category][]layout.Line {
	result := make(map[Category][]layout.Line)
	boundary, twoColumn := layout.DetectColumnSplit(lines)

	active := map[columnSide]Category{}
	for _, line := range lines {
		if IsPageFooter(line.Text) {
			continue
		}
		column := leftColumn
		if twoColumn && line.Left > boundary {
			column = rightColumn
		}
		if category, ok := Classify(line.Text); ok {
			active[column] = category
			continue
		}
		if category, ok := active[column]; ok {
			result[category] = append(result[category], line)
		}
	}
	return result
}
