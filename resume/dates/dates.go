// Package dates normalizes free-text date expressions into the canonical
// YYYY or YYYY-MM form. Unrecognized input degrades to the empty string;
// nothing is ever rejected as invalid.
package dates

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed months.yaml
var monthsYAML []byte

type monthsFile struct {
	Months    map[string]int `yaml:"months"`
	OpenEnded []string       `yaml:"open_ended"`
}

var (
	monthLookup map[string]int
	openEnded   map[string]struct{}
)

func init() {
	var file monthsFile
	if err := yaml.Unmarshal(monthsYAML, &file); err != nil {
		panic(fmt.Sprintf("dates: parse month vocabulary: %v", err))
	}
	monthLookup = file.Months
	openEnded = make(map[string]struct{}, len(file.OpenEnded))
	for _, marker := range file.OpenEnded {
		openEnded[marker] = struct{}{}
	}
}

var (
	rangeRE = regexp.MustCompile(
		`(?i)((?:[\p{L}\p{N}_]{3,9}\s+)?\d{4})\s*(?:-|–|—|to)\s*((?:[\p{L}\p{N}_]{3,9}\s+)?\d{4}|present|current|today)`)
	singleRE = regexp.MustCompile(`(?i)(?:[\p{L}\p{N}_]{3,9}\s+)?\d{4}`)
	yearRE   = regexp.MustCompile(`^\d{4}$`)
)

// HasRange reports whether the text contains a start–end date range.
func HasRange(text string) bool {
	return rangeRE.MatchString(text)
}

// HasDate reports whether the text contains a date range or a single date.
func HasDate(text string) bool {
	return rangeRE.MatchString(text) || singleRE.MatchString(text)
}

// Range extracts and normalizes the dates in the text. A range yields both
// sides; a lone date yields only a start. Missing or unparseable sides are
// empty strings.
func Range(text string) (start, end string) {
	if text == "" {
		return "", ""
	}
	if m := rangeRE.FindStringSubmatch(text); m != nil {
		return Normalize(m[1]), Normalize(m[2])
	}
	if m := singleRE.FindString(text); m != "" {
		return Normalize(m), ""
	}
	return "", ""
}

// Normalize converts one date expression to canonical form: open-ended
// markers become "", a bare year stays YYYY, a recognized "Month Year"
// becomes YYYY-MM, and anything else degrades to "". Canonical input passes
// through unchanged, so Normalize is idempotent.
func Normalize(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if _, ok := openEnded[value]; ok {
		return ""
	}
	parts := strings.Fields(value)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		token := parts[0]
		if yearRE.MatchString(token) {
			return token
		}
		// Already-canonical YYYY-MM round-trips to itself.
		if year, month, ok := splitCanonical(token); ok {
			return fmt.Sprintf("%s-%02d", year, month)
		}
		return ""
	default:
		month := monthLookup[runePrefix(parts[0], 3)]
		year := parts[1]
		if month != 0 && yearRE.MatchString(year) {
			return fmt.Sprintf("%s-%02d", year, month)
		}
		if yearRE.MatchString(year) {
			return year
		}
		return ""
	}
}

func splitCanonical(token string) (year string, month int, ok bool) {
	if len(token) != 7 || token[4] != '-' {
		return "", 0, false
	}
	year = token[:4]
	if !yearRE.MatchString(year) {
		return "", 0, false
	}
	m := 0
	for _, c := range token[5:] {
		if c < '0' || c > '9' {
			return "", 0, false
		}
		m = m*10 + int(c-'0')
	}
	if m < 1 || m > 12 {
		return "", 0, false
	}
	return year, m, true
}

func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
