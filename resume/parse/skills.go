package parse

import (
	"regexp"
	"strings"

	"resume-parser/resume/layout"
	"resume-parser/resume/model"
)

var listDelimiterRE = regexp.MustCompile(`[•·,;|]`)

// parseSkills splits a skills section on list delimiters when any are
// present; otherwise lines that read as runs of capitalized tokens (a skill
// list rendered as wrapped prose) are split into individual tokens and other
// lines are kept whole. Names are deduplicated case-insensitively, keeping
// first-seen casing.
func parseSkills(lines []layout.Line) []model.Skill {
	joined := strings.TrimSpace(joinLineTexts(lines))
	if joined == "" {
		return []model.Skill{}
	}

	var parts []string
	if listDelimiterRE.MatchString(joined) {
		parts = listDelimiterRE.Split(joined, -1)
	} else {
		for _, line := range lines {
			text := strings.TrimSpace(line.Text)
			if text == "" {
				continue
			}
			tokens := strings.Fields(text)
			if len(tokens) >= 3 && allTitleTokens(tokens) {
				parts = append(parts, tokens...)
			} else {
				parts = append(parts, text)
			}
		}
	}
	return dedupeSkills(parts)
}

func dedupeSkills(parts []string) []model.Skill {
	seen := make(map[string]struct{})
	skills := []model.Skill{}
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, model.Skill{Name: name})
	}
	return skills
}

func allTitleTokens(tokens []string) bool {
	for _, token := range tokens {
		if !isTitleToken(token) {
			return false
		}
	}
	return true
}

var fluencyRE = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)$`)

// parseLanguages reads one language per line, splitting a trailing
// parenthesized fluency when present.
func parseLanguages(lines []layout.Line) []model.Language {
	items := []model.Language{}
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" || isNoiseLine(text) {
			continue
		}
		if m := fluencyRE.FindStringSubmatch(text); m != nil {
			items = append(items, model.Language{
				Language: strings.TrimSpace(m[1]),
				Fluency:  strings.TrimSpace(m[2]),
			})
		} else {
			items = append(items, model.Language{Language: text})
		}
	}
	return items
}

// parseInterests splits the joined section text on list delimiters.
func parseInterests(lines []layout.Line) []model.Interest {
	var parts []string
	for _, line := range lines {
		if !isNoiseLine(line.Text) {
			parts = append(parts, line.Text)
		}
	}
	items := []model.Interest{}
	for _, part := range listDelimiterRE.Split(strings.Join(parts, " "), -1) {
		if name := strings.TrimSpace(part); name != "" {
			items = append(items, model.Interest{Name: name})
		}
	}
	return items
}

func joinLineTexts(lines []layout.Line) string {
	var parts []string
	for _, line := range lines {
		parts = append(parts, line.Text)
	}
	return strings.Join(parts, " ")
}
