package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/resume/layout"
)

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Experience", "experience"},
		{"EXPÉRIENCE", "experience"},
		{"  Licenses &  Certifications  ", "licenses & certifications"},
		{"Educación:", "educacion"},
		{"ОПЫТ РАБОТЫ", "опыт работы"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeading(tt.in), "NormalizeHeading(%q)", tt.in)
	}
}

func TestClassifyMultilingualHeadings(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Experience", Experience},
		{"EXPÉRIENCE", Experience},
		{"Berufserfahrung", Experience},
		{"Опыт работы", Experience},
		{"Educación", Education},
		{"Top Skills", Skills},
		{"Licenses & Certifications", Certifications},
		{"Languages", Languages},
		{"Hobbies", Interests},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.in)
		require.True(t, ok, "Classify(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Classify(%q)", tt.in)
	}
}

func TestClassifyRejectsNonHeadings(t *testing.T) {
	inputs := []string{
		"Worked on experience platform for 3 years",
		"experience with distributed systems and cloud infrastructure plus more",
		"Experience 2019",
		"Software Engineer",
	}
	for _, in := range inputs {
		_, ok := Classify(in)
		assert.False(t, ok, "Classify(%q)", in)
	}
}

func TestLooksLikeHeadingCountsRunesNotBytes(t *testing.T) {
	// 36 runes but 70 bytes in UTF-8.
	assert.True(t, LooksLikeHeading("Дополнительный профессиональный опыт"))
	assert.False(t, LooksLikeHeading("heading with digits 42"))
}

func TestIsPageFooter(t *testing.T) {
	assert.True(t, IsPageFooter("Page 1 of 3"))
	assert.True(t, IsPageFooter("  page 2 of 10 "))
	assert.True(t, IsPageFooter("Page 1/2"))
	assert.False(t, IsPageFooter("Page layout design"))
	assert.False(t, IsPageFooter("On page 4 of the report"))
}

func line(text string, top, left float64) layout.Line {
	return layout.Line{Text: text, Top: top, Bottom: top + 10, Left: left, Right: left + 100}
}

func TestSplitSingleColumn(t *testing.T) {
	lines := []layout.Line{
		line("Jane Doe", 10, 50),
		line("Experience", 30, 50),
		line("Acme Corp", 45, 50),
		line("Page 1 of 2", 60, 50),
		line("Education", 75, 50),
		line("State University", 90, 50),
	}

	got := Split(lines)
	require.Len(t, got[Experience], 1)
	assert.Equal(t, "Acme Corp", got[Experience][0].Text)
	require.Len(t, got[Education], 1)
	assert.Equal(t, "State University", got[Education][0].Text)
}

func TestSplitDropsPreambleLines(t *testing.T) {
	lines := []layout.Line{
		line("Jane Doe", 10, 50),
		line("jane@example.com", 25, 50),
		line("Skills", 40, 50),
		line("Go", 55, 50),
	}

	got := Split(lines)
	require.Len(t, got, 1)
	require.Len(t, got[Skills], 1)
	assert.Equal(t, "Go", got[Skills][0].Text)
}

func TestSplitTracksColumnsIndependently(t *testing.T) {
	// Enough lines to trigger column detection, split around x=200.
	var lines []layout.Line
	lines = append(lines, line("Skills", 10, 40))
	lines = append(lines, line("Experience", 10, 340))
	for i := 0; i < 30; i++ {
		lines = append(lines, line("Go", float64(25+i*12), 40))
		lines = append(lines, line("Acme Corp", float64(25+i*12), 340))
	}

	got := Split(lines)
	require.Len(t, got[Skills], 30)
	require.Len(t, got[Experience], 30)
	for _, l := range got[Skills] {
		assert.Equal(t, "Go", l.Text)
	}
	for _, l := range got[Experience] {
		assert.Equal(t, "Acme Corp", l.Text)
	}
}
