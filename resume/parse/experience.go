package parse

import (
	"strings"

	"resume-parser/resume/dates"
	"resume-parser/resume/layout"
	"resume-parser/resume/model"
	"resume-parser/resume/sections"
)

// parseExperience scans section lines with a date-range pivot: lines
// accumulated since the previous entry form the header (organization and
// position), and lines after the pivot up to the next one form the body
// (location, highlights, summary). Entries with neither an organization nor
// a position are dropped.
func parseExperience(lines []layout.Line) []model.Work {
	var texts []string
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" || sections.IsPageFooter(text) {
			continue
		}
		texts = append(texts, text)
	}

	kinds := make([]lineKind, len(texts))
	for i, text := range texts {
		kinds[i] = classifyLine(text)
	}

	entries := []model.Work{}
	var headerBuffer []string
	var current *model.Work
	var contentLines []string
	lastCompany := ""

	for i := 0; i < len(texts); i++ {
		text := texts[i]
		switch {
		case kinds[i] == kindDateRange:
			if current != nil {
				finishWorkEntry(current, contentLines)
				entries = append(entries, *current)
			}
			header := cleanHeaderLines(headerBuffer)
			headerBuffer = nil
			company, position := headerCompanyPosition(header, lastCompany)
			start, end := dates.Range(text)
			current = &model.Work{
				Name:       company,
				Position:   position,
				StartDate:  start,
				EndDate:    end,
				Highlights: []string{},
			}
			if company != "" {
				lastCompany = company
			}
			contentLines = nil

		case kinds[i] == kindDuration && len(headerBuffer) > 0:
			headerBuffer = append(headerBuffer, text)

		case looksLikeEntryHeader(texts, kinds, i):
			headerBuffer = append(headerBuffer, text)

		case current != nil:
			contentLines = append(contentLines, text)

		default:
			headerBuffer = append(headerBuffer, text)
		}
	}
	if current != nil {
		finishWorkEntry(current, contentLines)
		entries = append(entries, *current)
	}

	kept := []model.Work{}
	for _, entry := range entries {
		if entry.Name != "" || entry.Position != "" {
			kept = append(kept, entry)
		}
	}
	return kept
}

// finishWorkEntry splits the body lines of an entry into location,
// highlights, and summary.
func finishWorkEntry(entry *model.Work, contentLines []string) {
	location := findBlockLocation(contentLines)
	var remaining []string
	for _, text := range contentLines {
		if text != location {
			remaining = append(remaining, text)
		}
	}
	highlights, summary := splitHighlights(remaining)
	if highlights == nil {
		highlights = []string{}
	}
	entry.Location = location
	entry.Summary = summary
	entry.Highlights = highlights
}

// headerCompanyPosition resolves the header buffer into organization and
// position. A one-line header is a bare position continuing the previous
// organization; "Position at Company" ordering is detected on the first line.
func headerCompanyPosition(header []string, lastCompany string) (company, position string) {
	if len(header) == 0 {
		return lastCompany, ""
	}
	if len(header) >= 2 {
		company = header[0]
		position = header[1]
		if _, _, ok := splitAt(company); ok {
			position, company = splitTitleCompany([]string{company, position})
		}
		return company, position
	}
	return lastCompany, header[0]
}

func cleanHeaderLines(header []string) []string {
	var cleaned []string
	for _, text := range header {
		if text == "" || isSectionLabel(text) {
			continue
		}
		if isDurationLine(text) || isEmploymentTypeLine(text) {
			continue
		}
		cleaned = append(cleaned, text)
	}
	return cleaned
}

// looksLikeEntryHeader detects the start of a new entry: a short,
// non-bulleted, non-dated line followed within a small lookahead window by a
// date range or a bare duration line.
func looksLikeEntryHeader(texts []string, kinds []lineKind, idx int) bool {
	text := texts[idx]
	if text == "" || kinds[idx] == kindLabel || kinds[idx] == kindBullet {
		return false
	}
	next := ""
	if idx+1 < len(texts) {
		next = texts[idx+1]
	}
	if isDurationLine(next) {
		return true
	}
	if next != "" && containsRoleKeyword(next) && idx+2 < len(texts) && kinds[idx+2] == kindDateRange {
		return isCompanyNameWord(text) || isHeaderCandidate(text)
	}
	if len(text) > 50 || !isHeaderCandidate(text) {
		return false
	}
	for offset := 1; offset <= 3; offset++ {
		if idx+offset < len(texts) && kinds[idx+offset] == kindDateRange {
			return true
		}
	}
	return false
}
