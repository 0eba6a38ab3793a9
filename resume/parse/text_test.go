package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		in   string
		want lineKind
	}{
		{"Achievements:", kindLabel},
		{"January 2020 - Present", kindDateRange},
		{"• Shipped the billing service", kindBullet},
		{"3 years 2 months", kindDuration},
		{"Acme Corp", kindPlain},
		// A bulleted line carrying a range still pivots a new entry.
		{"• June 2019 - June 2020", kindDateRange},
		// A duration next to an explicit year is not a bare duration.
		{"2 years at Acme since 2019", kindPlain},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyLine(tt.in), "classifyLine(%q)", tt.in)
	}
}

func TestSplitHighlights(t *testing.T) {
	highlights, summary := splitHighlights([]string{
		"Owns the payments platform.",
		"• Cut infra spend by 30%",
		"across three regions",
		"• Mentored five engineers",
		"Achievements:",
	})

	assert.Equal(t, []string{
		"Cut infra spend by 30% across three regions",
		"Mentored five engineers",
	}, highlights)
	assert.Equal(t, "Owns the payments platform.", summary)
}

func TestSplitHighlightsProseOnly(t *testing.T) {
	highlights, summary := splitHighlights([]string{"Runs the data team.", "Hybrid role."})
	assert.Empty(t, highlights)
	assert.Equal(t, "Runs the data team. Hybrid role.", summary)
}

func TestSplitTitleCompany(t *testing.T) {
	pos, company := splitTitleCompany([]string{"Volunteer Mentor at Code Club"})
	assert.Equal(t, "Volunteer Mentor", pos)
	assert.Equal(t, "Code Club", company)

	pos, company = splitTitleCompany([]string{"Board Member", "Chess Society · Part-time"})
	assert.Equal(t, "Board Member", pos)
	assert.Equal(t, "Chess Society", company)

	pos, company = splitTitleCompany(nil)
	assert.Equal(t, "", pos)
	assert.Equal(t, "", company)
}

func TestSplitAtIsCaseInsensitiveAndWordBounded(t *testing.T) {
	before, after, ok := splitAt("Lead Developer AT Initech")
	assert.True(t, ok)
	assert.Equal(t, "Lead Developer", before)
	assert.Equal(t, "Initech", after)

	_, _, ok = splitAt("Boat Attendant")
	assert.False(t, ok)
}

func TestFindBlockLocation(t *testing.T) {
	assert.Equal(t, "Helsinki, Finland", findBlockLocation([]string{
		"• Shipped features",
		"Helsinki, Finland",
	}))

	// Single capitalized word without a role keyword reads as a city.
	assert.Equal(t, "Berlin", findBlockLocation([]string{"Berlin", "• Did things"}))

	// One-word role titles are not locations.
	assert.Equal(t, "", findBlockLocation([]string{"Developer"}))

	// Comma lines with dates are date ranges, not locations.
	assert.Equal(t, "", findBlockLocation([]string{"June 2019 - 2020, remote"}))
}

func TestCleanBlockTexts(t *testing.T) {
	texts := []string{
		"Acme Corp",
		"Page 2 of 3",
		"Achievements:",
		"3 years 4 months",
		"Full-time",
		"Shipped the pipeline",
	}

	got := cleanBlockTexts(texts, true, true)
	assert.Equal(t, []string{"Acme Corp", "Shipped the pipeline"}, got)

	kept := cleanBlockTexts(texts, false, false)
	assert.Equal(t, []string{"Acme Corp", "3 years 4 months", "Full-time", "Shipped the pipeline"}, kept)
}
