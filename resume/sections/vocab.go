// Package sections classifies reconstructed lines into named resume
// sections using a multilingual heading vocabulary.
package sections

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Category names one kind of resume content.
type Category string

const (
	About          Category = "about"
	Experience     Category = "experience"
	Education      Category = "education"
	Skills         Category = "skills"
	Certifications Category = "certifications"
	Projects       Category = "projects"
	Volunteer      Category = "volunteer"
	Languages      Category = "languages"
	Interests      Category = "interests"
)

//go:embed vocab.yaml
var vocabYAML []byte

type vocabFile struct {
	Headings map[string][]string `yaml:"headings"`
}

// headingLookup maps a normalized heading alias to its category.
var headingLookup = mustLoadVocab(vocabYAML)

func mustLoadVocab(raw []byte) map[string]Category {
	var file vocabFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		panic(fmt.Sprintf("sections: parse heading vocabulary: %v", err))
	}
	lookup := make(map[string]Category)
	for category, aliases := range file.Headings {
		for _, alias := range aliases {
			lookup[NormalizeHeading(alias)] = Category(category)
		}
	}
	return lookup
}

// foldTransform decomposes to NFD, drops combining marks, and recomposes,
// so accented and plain spellings of a heading compare equal.
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeading produces the canonical lookup key for a heading line:
// NFKC-normalized, accent-folded, lowercased, punctuation stripped (keeping
// the ampersand), whitespace collapsed.
func NormalizeHeading(text string) string {
	normalized := norm.NFKC.String(text)
	if folded, _, err := transform.String(foldTransform, normalized); err == nil {
		normalized = folded
	}
	normalized = strings.ToLower(normalized)

	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '&':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Classify resolves a raw line to a section category. The line must both
// match the vocabulary and look like a heading (short, no digits, 1–5 words).
func Classify(text string) (Category, bool) {
	if !LooksLikeHeading(text) {
		return "", false
	}
	category, ok := headingLookup[NormalizeHeading(text)]
	return category, ok
}

// LooksLikeHeading reports whether a line is plausibly a section heading.
func LooksLikeHeading(text string) bool {
	if utf8.RuneCountInString(text) > 60 {
		return false
	}
	for _, r := range text {
		if unicode.IsDigit(r) {
			return false
		}
	}
	words := len(strings.Fields(text))
	return words >= 1 && words <= 5
}
