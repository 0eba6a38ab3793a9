package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/resume/layout"
	"resume-parser/resume/model"
)

func experienceLines(texts []string) []layout.Line {
	var lines []layout.Line
	for i, text := range texts {
		top := 100 + float64(i)*12
		lines = append(lines, layout.Line{Text: text, Top: top, Bottom: top + 10, Left: 50, Right: 400})
	}
	return lines
}

func TestParseExperiencePromotionInheritsCompany(t *testing.T) {
	lines := experienceLines([]string{
		"Acme Corp",
		"Senior Software Engineer",
		"January 2020 - June 2022",
		"Helsinki, Finland",
		"• Built the data pipeline",
		"• Cut deploy times in half",
		"• Mentored three juniors",
		"Staff Engineer",
		"June 2022 - Present",
		"• Led the platform team",
	})

	work := parseExperience(lines)
	require.Len(t, work, 2)

	first := work[0]
	assert.Equal(t, "Acme Corp", first.Name)
	assert.Equal(t, "Senior Software Engineer", first.Position)
	assert.Equal(t, "2020-01", first.StartDate)
	assert.Equal(t, "2022-06", first.EndDate)
	assert.Equal(t, "Helsinki, Finland", first.Location)
	assert.Equal(t, []string{
		"Built the data pipeline",
		"Cut deploy times in half",
		"Mentored three juniors",
	}, first.Highlights)

	second := work[1]
	assert.Equal(t, "Acme Corp", second.Name)
	assert.Equal(t, "Staff Engineer", second.Position)
	assert.Equal(t, "2022-06", second.StartDate)
	assert.Equal(t, "", second.EndDate)
	assert.Equal(t, []string{"Led the platform team"}, second.Highlights)
}

func TestParseExperienceSoftWrapContinuesHighlight(t *testing.T) {
	lines := experienceLines([]string{
		"Acme Corp",
		"Senior Engineer",
		"Jan 2019 - Dec 2021",
		"• Built ingestion service",
		"handling peak traffic",
		"• Led migration to Go",
	})

	work := parseExperience(lines)
	require.Len(t, work, 1)
	assert.Equal(t, "Acme Corp", work[0].Name)
	assert.Equal(t, "Senior Engineer", work[0].Position)
	assert.Equal(t, "2019-01", work[0].StartDate)
	assert.Equal(t, "2021-12", work[0].EndDate)
	assert.Equal(t, []string{
		"Built ingestion service handling peak traffic",
		"Led migration to Go",
	}, work[0].Highlights)
}

func TestParseExperiencePositionAtCompanyHeader(t *testing.T) {
	lines := experienceLines([]string{
		"Lead Developer at Initech",
		"Chicago Office",
		"March 2015 - December 2019",
		"Shipped the reporting suite.",
	})

	work := parseExperience(lines)
	require.Len(t, work, 1)
	assert.Equal(t, "Initech", work[0].Name)
	assert.Equal(t, "Lead Developer", work[0].Position)
	assert.Equal(t, "2015-03", work[0].StartDate)
	assert.Equal(t, "2019-12", work[0].EndDate)
	assert.Equal(t, "Shipped the reporting suite.", work[0].Summary)
	assert.Empty(t, work[0].Highlights)
}

func TestParseExperienceDropsEmploymentTypeFromHeader(t *testing.T) {
	lines := experienceLines([]string{
		"Acme Oy",
		"Full-time",
		"Product Manager",
		"May 2018 - May 2020",
	})

	work := parseExperience(lines)
	require.Len(t, work, 1)
	assert.Equal(t, "Acme Oy", work[0].Name)
	assert.Equal(t, "Product Manager", work[0].Position)
	assert.Equal(t, "2018-05", work[0].StartDate)
	assert.Equal(t, "2020-05", work[0].EndDate)
}

func TestParseExperienceDropsHeaderlessEntries(t *testing.T) {
	lines := experienceLines([]string{"January 2020 - June 2021"})
	assert.Equal(t, []model.Work{}, parseExperience(lines))
}
