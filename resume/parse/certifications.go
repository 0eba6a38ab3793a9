package parse

import (
	"strings"

	"resume-parser/resume/layout"
	"resume-parser/resume/model"
)

// parseCertifications merges wrapped certificate names sequentially: a line
// that opens a parenthetical, starts with a dash, or mentions a
// specialization continues the current certificate; anything else starts a
// new one.
func parseCertifications(lines []layout.Line) []model.Certificate {
	var texts []string
	for _, line := range lines {
		if strings.TrimSpace(line.Text) != "" {
			texts = append(texts, line.Text)
		}
	}
	texts = cleanBlockTexts(texts, false, false)

	entries := []model.Certificate{}
	currentName := ""
	for _, text := range texts {
		cleaned := trimHobbiesSuffix(strings.TrimSpace(text))
		if cleaned == "" {
			continue
		}
		if currentName != "" && isCertContinuation(cleaned) {
			currentName = strings.TrimSpace(currentName + " " + cleaned)
			continue
		}
		if currentName != "" {
			entries = append(entries, model.Certificate{Name: currentName})
		}
		currentName = cleaned
	}
	if currentName != "" {
		entries = append(entries, model.Certificate{Name: currentName})
	}
	return entries
}

func isCertContinuation(text string) bool {
	lowered := strings.ToLower(text)
	if strings.HasPrefix(lowered, "(") || strings.HasPrefix(lowered, "-") {
		return true
	}
	return strings.Contains(lowered, "specialization")
}

// trimHobbiesSuffix drops a sidebar "Hobbies: ..." fragment that bled into
// a certificate line from the adjacent column.
func trimHobbiesSuffix(text string) string {
	if idx := strings.Index(text, "Hobbies:"); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return text
}
