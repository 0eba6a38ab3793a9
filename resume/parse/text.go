// Package parse segments section lines into discrete entries and applies
// one heuristic parser per category, assembling the final resume record.
package parse

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"resume-parser/resume/dates"
	"resume-parser/resume/sections"
)

//go:embed keywords.yaml
var keywordsYAML []byte

type keywordsFile struct {
	LocationKeywords []string `yaml:"location_keywords"`
	RoleKeywords     []string `yaml:"role_keywords"`
	EmploymentTypes  []string `yaml:"employment_types"`
	DegreeKeywords   []string `yaml:"degree_keywords"`
	NoiseLines       []string `yaml:"noise_lines"`
	CompanySuffixes  []string `yaml:"company_suffixes"`
}

var keywords keywordsFile

func init() {
	if err := yaml.Unmarshal(keywordsYAML, &keywords); err != nil {
		panic(fmt.Sprintf("parse: parse keyword tables: %v", err))
	}
}

var (
	durationRE     = regexp.MustCompile(`(?i)\b\d+\s+(?:year|years|yr|yrs|month|months|mo|mos)\b`)
	bareYearRE     = regexp.MustCompile(`\b\d{4}\b`)
	trailingYearRE = regexp.MustCompile(`^\d{4}\)?$`)
	parenYearRE    = regexp.MustCompile(`\(\d{4}`)
)

// lineKind tags each cleaned line once so the parsers branch on shape
// instead of re-testing raw text.
type lineKind int

const (
	kindPlain lineKind = iota
	kindBullet
	kindDateRange
	kindDuration
	kindLabel
)

func classifyLine(text string) lineKind {
	switch {
	case isSectionLabel(text):
		return kindLabel
	case dates.HasRange(text):
		return kindDateRange
	case isBulletLine(text):
		return kindBullet
	case isDurationLine(text):
		return kindDuration
	default:
		return kindPlain
	}
}

func isBulletLine(text string) bool {
	return strings.HasPrefix(text, "-") || strings.HasPrefix(text, "•") || strings.HasPrefix(text, "–")
}

func stripBullet(text string) string {
	return strings.TrimSpace(strings.TrimLeft(text, "•-– "))
}

// isDurationLine detects bare duration phrases like "3 years 2 months" that
// carry no explicit year.
func isDurationLine(text string) bool {
	if bareYearRE.MatchString(text) {
		return false
	}
	return durationRE.MatchString(text)
}

func isSectionLabel(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "achievements:", "achievements", "main responsibilities:":
		return true
	}
	return false
}

func isEmploymentTypeLine(text string) bool {
	lowered := strings.ToLower(text)
	for _, term := range keywords.EmploymentTypes {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

func isNoiseLine(text string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if strings.HasPrefix(lowered, "page ") || sections.IsPageFooter(lowered) {
		return true
	}
	if lowered == "contact" || strings.HasPrefix(lowered, "contact ") {
		return true
	}
	for _, noise := range keywords.NoiseLines {
		if lowered == noise {
			return true
		}
	}
	return false
}

func containsRoleKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range keywords.RoleKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// isLocationText flags short lines with a comma or a known location term.
func isLocationText(text string) bool {
	if len(text) > 60 {
		return false
	}
	if strings.Contains(text, ",") {
		return true
	}
	lowered := strings.ToLower(text)
	for _, keyword := range keywords.LocationKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// findBlockLocation picks a location line out of a work block: either a
// short comma line without dates, or a single capitalized word. The one-word
// rule is a documented heuristic and can misfire on one-word role titles.
func findBlockLocation(texts []string) string {
	for _, text := range texts {
		if strings.Contains(text, ",") && len(text) <= 60 && !dates.HasRange(text) {
			return text
		}
		if len(text) <= 20 && isAlphaCapitalized(text) && !containsRoleKeyword(text) {
			return text
		}
	}
	return ""
}

func isAlphaCapitalized(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	first := []rune(text)[0]
	return unicode.IsUpper(first)
}

func isHeaderCandidate(text string) bool {
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, ":") {
		return false
	}
	if containsRoleKeyword(text) {
		return true
	}
	for _, suffix := range keywords.CompanySuffixes {
		if strings.Contains(text, suffix) {
			return true
		}
	}
	words := strings.Fields(text)
	if len(words) >= 2 {
		caps := 0
		for _, word := range words {
			if startsUpper(word) {
				caps++
			}
		}
		min := len(words) / 2
		if min < 1 {
			min = 1
		}
		return caps >= min
	}
	return false
}

func isCompanyNameWord(text string) bool {
	stripped := strings.TrimSpace(text)
	if strings.HasSuffix(stripped, ".") || strings.HasSuffix(stripped, ":") {
		return false
	}
	parts := strings.Fields(stripped)
	if len(parts) != 1 {
		return false
	}
	return startsUpper(parts[0])
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func isTitleToken(token string) bool {
	if strings.HasPrefix(token, ".") && len(token) > 1 {
		return true
	}
	if token == strings.ToUpper(token) && token != strings.ToLower(token) {
		return true
	}
	return startsUpper(token)
}

func looksLikeDegreeLine(text string) bool {
	if dates.HasRange(text) {
		return true
	}
	if parenYearRE.MatchString(text) {
		return true
	}
	lowered := strings.ToLower(text)
	for _, keyword := range []string{"degree", "bachelor", "master", "phd"} {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func isTrailingYearLine(text string) bool {
	return trailingYearRE.MatchString(strings.TrimSpace(text))
}

// cleanBlockTexts drops footers, noise, and the bare "achievements" label
// from a block, and optionally duration and employment-type lines.
func cleanBlockTexts(texts []string, dropDuration, dropEmployment bool) []string {
	var cleaned []string
	for _, text := range texts {
		if sections.IsPageFooter(text) || isNoiseLine(text) {
			continue
		}
		if isSectionLabel(text) {
			continue
		}
		if dropDuration && isDurationLine(text) {
			continue
		}
		if dropEmployment && isEmploymentTypeLine(text) {
			continue
		}
		cleaned = append(cleaned, text)
	}
	return cleaned
}

// splitHighlights separates bullet lines (highlights) from prose (summary).
// A plain line directly after a bullet is a soft-wrapped continuation and is
// appended to the previous highlight instead of starting a new one.
func splitHighlights(texts []string) (highlights []string, summary string) {
	var summaryParts []string
	lastWasHighlight := false
	for _, text := range texts {
		stripped := strings.TrimSpace(text)
		if isSectionLabel(stripped) {
			continue
		}
		if isBulletLine(stripped) {
			highlights = append(highlights, stripBullet(stripped))
			lastWasHighlight = true
		} else if len(highlights) > 0 && lastWasHighlight {
			highlights[len(highlights)-1] = strings.TrimSpace(highlights[len(highlights)-1] + " " + stripped)
		} else {
			summaryParts = append(summaryParts, stripped)
			lastWasHighlight = false
		}
	}
	return highlights, strings.Join(summaryParts, " ")
}

// splitTitleCompany handles "Position at Company" on one line, or position
// on the first line and company on the second.
func splitTitleCompany(texts []string) (position, company string) {
	if len(texts) == 0 {
		return "", ""
	}
	first := texts[0]
	if before, after, ok := splitAt(first); ok {
		return before, after
	}
	position = first
	if len(texts) > 1 {
		company = texts[1]
		if cut := strings.Index(company, "·"); cut >= 0 {
			company = company[:cut]
		}
		company = strings.TrimSpace(company)
	}
	return position, company
}

var atSplitRE = regexp.MustCompile(`(?i)\s+at\s+`)

// splitAt splits "Position at Company" around the first " at ".
func splitAt(text string) (before, after string, ok bool) {
	loc := atSplitRE.FindStringIndex(text)
	if loc == nil {
		return "", "", false
	}
	return strings.TrimSpace(text[:loc[0]]), strings.TrimSpace(text[loc[1]:]), true
}
