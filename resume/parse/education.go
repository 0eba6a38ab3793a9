package parse

import (
	"regexp"
	"strings"

	"resume-parser/resume/dates"
	"resume-parser/resume/layout"
	"resume-parser/resume/model"
)

func parseEducation(lines []layout.Line) []model.Education {
	entries := []model.Education{}
	for _, block := range splitEducationBlocks(lines) {
		if entry, ok := parseEducationBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseEducationBlock(block []layout.Line) (model.Education, bool) {
	var texts []string
	for _, line := range block {
		if t := line.Text; strings.TrimSpace(t) != "" {
			texts = append(texts, t)
		}
	}
	texts = cleanBlockTexts(texts, false, false)
	if len(texts) == 0 {
		return model.Education{}, false
	}

	dateLine := findDateLine(texts)
	start, end := "", ""
	if dateLine != "" {
		start, end = dates.Range(dateLine)
	}

	cleaned := texts
	if dateLine != "" && !looksLikeDegreeLine(dateLine) {
		cleaned = nil
		for _, t := range texts {
			if t != dateLine {
				cleaned = append(cleaned, t)
			}
		}
	}

	entry := model.Education{StartDate: start, EndDate: end}
	if len(cleaned) > 0 {
		entry.Institution = cleaned[0]
	}
	if len(cleaned) > 1 {
		entry.StudyType, entry.Area = parseDegree(cleaned[1])
	}
	if entry.Institution == "" && entry.StudyType == "" && start == "" && end == "" {
		return model.Education{}, false
	}
	return entry, true
}

func findDateLine(texts []string) string {
	for _, text := range texts {
		if dates.HasDate(text) {
			return text
		}
	}
	return ""
}

var parenDateRE = regexp.MustCompile(`\s*\([^)]*\d{4}[^)]*\)`)

// parseDegree splits a degree line into study type and area, preferring the
// comma side that carries a degree keyword, then falling back to an
// "X in Y" split.
func parseDegree(line string) (studyType, area string) {
	if line == "" {
		return "", ""
	}
	line = strings.TrimSpace(parenDateRE.ReplaceAllString(line, ""))
	line = strings.TrimSpace(strings.ReplaceAll(line, "·", " "))

	if left, right, found := strings.Cut(line, ","); found {
		if containsDegreeKeyword(left) {
			return strings.TrimSpace(left), strings.TrimSpace(right)
		}
	}
	if containsDegreeKeyword(line) {
		studyType = line
	}
	if parts := inSplitRE.Split(line, 2); len(parts) == 2 {
		studyType = strings.TrimSpace(parts[0])
		area = strings.TrimSpace(parts[1])
	}
	if studyType == "" {
		studyType = line
	}
	return studyType, area
}

var inSplitRE = regexp.MustCompile(`(?i)\s+in\s+`)

func containsDegreeKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range keywords.DegreeKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
