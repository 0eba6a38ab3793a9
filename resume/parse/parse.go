package parse

import (
	"regexp"
	"strings"

	"resume-parser/resume/layout"
	"resume-parser/resume/model"
	"resume-parser/resume/sections"
)

// Resume runs the full extraction pipeline over decoded pages: line
// reconstruction, section classification, per-category parsing, and the
// hobbies summary post-pass. It never fails; degenerate input produces a
// record with every field present and empty.
func Resume(pages []layout.Page) model.Resume {
	lines := layout.BuildLines(pages)
	split := sections.Split(lines)

	var textParts []string
	for _, line := range lines {
		textParts = append(textParts, line.Text)
	}
	allText := strings.Join(textParts, "\n")

	resume := model.New()
	resume.Basics = parseBasics(lines, allText, split[sections.About])
	resume.Work = parseExperience(split[sections.Experience])
	resume.Education = parseEducation(split[sections.Education])
	resume.Skills = parseSkills(split[sections.Skills])
	resume.Certificates = parseCertifications(split[sections.Certifications])
	resume.Projects = parseProjects(split[sections.Projects])
	resume.Volunteer = parseVolunteer(split[sections.Volunteer])
	resume.Languages = parseLanguages(split[sections.Languages])
	resume.Interests = parseInterests(split[sections.Interests])

	marker := findHobbiesMarker(lines)
	resume.Basics.Summary = foldHobbiesIntoSummary(resume.Basics.Summary, resume.Interests, marker)
	return resume
}

// findHobbiesMarker looks for a short aside in the column opposite a
// "hobbies:" line: the nearest line below it on the same page across the
// column boundary. Two-column layouts only.
func findHobbiesMarker(lines []layout.Line) string {
	boundary, twoColumn := layout.DetectColumnSplit(lines)
	if !twoColumn {
		return ""
	}
	var hobbyLines []layout.Line
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line.Text), "hobbies:") {
			hobbyLines = append(hobbyLines, line)
		}
	}
	if len(hobbyLines) == 0 {
		return ""
	}

	bestText := ""
	bestGap := -1.0
	for _, hobby := range hobbyLines {
		hobbyIsLeft := hobby.Left <= boundary
		for _, line := range lines {
			if line.Page != hobby.Page {
				continue
			}
			if (line.Left <= boundary) == hobbyIsLeft {
				continue
			}
			if line.Top < hobby.Top {
				continue
			}
			text := strings.TrimSpace(line.Text)
			if text == "" || strings.Contains(strings.ToLower(text), "hobbies") {
				continue
			}
			gap := line.Top - hobby.Top
			if bestGap < 0 || gap < bestGap {
				bestGap = gap
				bestText = text
			}
		}
	}
	return bestText
}

var hobbiesWordRE = regexp.MustCompile(`(?i)\bhobbies\b`)

// foldHobbiesIntoSummary inserts an explicit "Hobbies:" clause into the
// summary when interests (or an aside marker) were detected elsewhere in the
// document: at the point where the interest list already appears in the
// summary, or appended otherwise. Summaries already mentioning hobbies are
// left alone.
func foldHobbiesIntoSummary(summary string, interests []model.Interest, marker string) string {
	trimmed := strings.TrimSpace(summary)
	if trimmed == "" {
		return summary
	}
	if hobbiesWordRE.MatchString(trimmed) {
		return summary
	}
	if len(interests) == 0 && marker == "" {
		return summary
	}

	var names []string
	for _, interest := range interests {
		if name := strings.TrimSpace(interest.Name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		interestsText := strings.Join(names, ", ")
		if idx := indexFold(trimmed, interestsText); idx >= 0 {
			return strings.TrimSpace(trimmed[:idx] + "Hobbies: " + trimmed[idx:])
		}
		return strings.TrimSpace(strings.TrimRight(trimmed, " ") + " Hobbies: " + interestsText)
	}

	if idx := indexFold(trimmed, marker); idx >= 0 {
		trimmed = trimmed[:idx] + "Hobbies: " + trimmed[idx:]
	}
	return strings.TrimSpace(trimmed)
}

// indexFold finds needle in haystack case-insensitively. Matching runs on
// the original string because lower-casing can change rune byte lengths and
// the byte offset is used for slicing.
func indexFold(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(needle))
	if loc := re.FindStringIndex(haystack); loc != nil {
		return loc[0]
	}
	return -1
}
