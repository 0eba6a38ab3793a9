package parse

import (
	"regexp"
	"strings"

	"resume-parser/resume/layout"
	"resume-parser/resume/model"
)

var (
	emailRE = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	urlRE   = regexp.MustCompile(`(?i)https?://\S+|www\.\S+|linkedin\.com/\S+|github\.com/\S+|gitlab\.com/\S+`)
	phoneRE = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(?\d{2,3}\)?[\s.-]?)?\d{3}[\s.-]?\d{4}`)

	linkedinHandleRE = regexp.MustCompile(`(?i)(\S+)\s*\(LinkedIn\)`)
	nonDigitRE       = regexp.MustCompile(`\D`)
)

// Identity details live near the top of the document.
const contactWindow = 12

func parseBasics(lines []layout.Line, allText string, aboutLines []layout.Line) model.Basics {
	name, label := pickNameLabel(lines)
	basics := model.Basics{
		Name:     name,
		Label:    label,
		Location: findLocation(head(lines, contactWindow)),
		Phone:    findPhone(lines),
		Profiles: buildProfiles(urlRE.FindAllString(allText, -1), lines),
	}
	if m := emailRE.FindString(allText); m != "" {
		basics.Email = m
	}

	var summaryParts []string
	for _, line := range aboutLines {
		if !isNoiseLine(line.Text) {
			summaryParts = append(summaryParts, line.Text)
		}
	}
	basics.Summary = strings.TrimSpace(strings.Join(summaryParts, " "))
	return basics
}

func head(lines []layout.Line, n int) []layout.Line {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

// pickNameLabel takes the first contact-free line as the name and the next
// line that does not read as a location as the headline label.
func pickNameLabel(lines []layout.Line) (name, label string) {
	for _, line := range head(lines, contactWindow) {
		text := strings.TrimSpace(line.Text)
		if isNoiseLine(text) {
			continue
		}
		if emailRE.MatchString(text) || urlRE.MatchString(text) || phoneRE.MatchString(text) {
			continue
		}
		if name == "" {
			name = stripContactPrefix(text)
			continue
		}
		if label == "" && !isLocationText(text) {
			label = text
			break
		}
	}
	return name, label
}

func stripContactPrefix(text string) string {
	if strings.HasPrefix(strings.ToLower(text), "contact ") {
		return strings.TrimSpace(text[len("contact "):])
	}
	return text
}

func findLocation(lines []layout.Line) string {
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if isLocationText(text) && !emailRE.MatchString(text) {
			return text
		}
		if strings.Contains(strings.ToLower(text), " area") {
			return text
		}
	}
	return ""
}

func findPhone(lines []layout.Line) string {
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		lowered := strings.ToLower(text)
		if strings.Contains(lowered, "linkedin") || strings.Contains(lowered, "github") || urlRE.MatchString(text) {
			continue
		}
		match := phoneRE.FindString(text)
		if match == "" {
			continue
		}
		if len(nonDigitRE.ReplaceAllString(match, "")) < 7 {
			continue
		}
		return match
	}
	return ""
}

// buildProfiles classifies collected URLs by domain and deduplicates them
// case-insensitively. When a full linkedin.com/in/<handle> link exists,
// truncated or bare /in links are dropped in its favor.
func buildProfiles(urls []string, lines []layout.Line) []model.Profile {
	collected := make([]string, 0, len(urls)+1)
	for _, u := range urls {
		collected = append(collected, strings.TrimRight(u, ").,"))
	}
	if extra := linkedinFromHandle(lines); extra != "" {
		collected = append(collected, extra)
	}

	hasFullLinkedIn := false
	for _, u := range collected {
		lower := strings.ToLower(u)
		if strings.Contains(lower, "linkedin.com/in/") && !strings.HasSuffix(strings.TrimRight(u, "/"), "-") {
			hasFullLinkedIn = true
			break
		}
	}

	seen := make(map[string]struct{})
	profiles := []model.Profile{}
	for _, u := range collected {
		lower := strings.ToLower(u)
		if strings.Contains(lower, "linkedin.com/in/") && hasFullLinkedIn {
			if strings.HasSuffix(strings.TrimRight(u, "/"), "-") {
				continue
			}
			if strings.HasSuffix(lower, "/in") || strings.HasSuffix(lower, "/in/") {
				continue
			}
		}
		network := ""
		switch {
		case strings.Contains(lower, "linkedin.com"):
			network = "LinkedIn"
		case strings.Contains(lower, "github.com"):
			network = "GitHub"
		case strings.Contains(lower, "twitter.com"):
			network = "Twitter"
		}
		key := strings.ToLower(network) + "::" + strings.ToLower(strings.TrimRight(u, "/"))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if network == "" {
			network = "Website"
		}
		profiles = append(profiles, model.Profile{Network: network, URL: u})
	}
	return profiles
}

// linkedinFromHandle reconstructs a profile URL from the "<handle>
// (LinkedIn)" pattern LinkedIn prints in the contact sidebar.
func linkedinFromHandle(lines []layout.Line) string {
	for _, line := range lines {
		m := linkedinHandleRE.FindStringSubmatch(line.Text)
		if m == nil {
			continue
		}
		handle := strings.TrimSpace(m[1])
		if handle != "" && !strings.Contains(strings.ToLower(handle), "linkedin.com") {
			return "https://www.linkedin.com/in/" + handle
		}
	}
	return ""
}
