package parse

import (
	"strings"

	"resume-parser/resume/dates"
	"resume-parser/resume/layout"
	"resume-parser/resume/model"
)

// parseProjects treats each block's first line as the project name and the
// rest as a flowed description.
func parseProjects(lines []layout.Line) []model.Project {
	entries := []model.Project{}
	for _, block := range splitBlocks(lines) {
		texts := cleanBlockTexts(blockTexts(block), false, false)
		if len(texts) == 0 {
			continue
		}
		entries = append(entries, model.Project{
			Name:        texts[0],
			Description: strings.TrimSpace(strings.Join(texts[1:], " ")),
		})
	}
	return entries
}

// parseVolunteer extracts position/organization from the block head (with
// "Position at Organization" splitting) and a date line if present; the
// remaining lines become the summary.
func parseVolunteer(lines []layout.Line) []model.Volunteer {
	entries := []model.Volunteer{}
	for _, block := range splitBlocks(lines) {
		texts := cleanBlockTexts(blockTexts(block), true, true)
		if len(texts) == 0 {
			continue
		}

		dateLine := findDateLine(texts)
		start, end := "", ""
		if dateLine != "" {
			start, end = dates.Range(dateLine)
		}
		var cleaned []string
		for _, t := range texts {
			if t != dateLine {
				cleaned = append(cleaned, t)
			}
		}

		position, organization := splitTitleCompany(cleaned)
		summary := ""
		if len(cleaned) > 2 {
			summary = strings.TrimSpace(strings.Join(cleaned[2:], " "))
		}
		entry := model.Volunteer{
			Organization: organization,
			Position:     position,
			StartDate:    start,
			EndDate:      end,
			Summary:      summary,
		}
		if entry.Organization == "" && entry.Position == "" && summary == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func blockTexts(block []layout.Line) []string {
	var texts []string
	for _, line := range block {
		if strings.TrimSpace(line.Text) != "" {
			texts = append(texts, line.Text)
		}
	}
	return texts
}
