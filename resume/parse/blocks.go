package parse

import (
	"sort"
	"strings"

	"resume-parser/resume/dates"
	"resume-parser/resume/layout"
	"resume-parser/resume/sections"
)

// Vertical gaps larger than this multiple of the median line height start a
// new block.
const gapFactor = 1.8

const defaultLineHeight = 10.0

// splitBlocks cuts a section's lines into blocks on large vertical gaps,
// then folds continuation blocks (bullets, labels, footers, orphaned
// durations) back into their predecessor.
func splitBlocks(lines []layout.Line) [][]layout.Line {
	if len(lines) == 0 {
		return nil
	}
	threshold := medianLineHeight(lines) * gapFactor

	var blocks [][]layout.Line
	current := []layout.Line{lines[0]}
	lastBottom := lines[0].Bottom
	for _, line := range lines[1:] {
		if line.Top-lastBottom > threshold {
			blocks = append(blocks, current)
			current = []layout.Line{line}
		} else {
			current = append(current, line)
		}
		lastBottom = line.Bottom
	}
	blocks = append(blocks, current)

	var merged [][]layout.Line
	for _, block := range blocks {
		if len(merged) > 0 && isContinuationBlock(block) {
			merged[len(merged)-1] = append(merged[len(merged)-1], block...)
		} else {
			merged = append(merged, block)
		}
	}
	return merged
}

func medianLineHeight(lines []layout.Line) float64 {
	var heights []float64
	for _, line := range lines {
		if line.Bottom > line.Top {
			heights = append(heights, line.Bottom-line.Top)
		}
	}
	if len(heights) == 0 {
		return defaultLineHeight
	}
	sort.Float64s(heights)
	mid := len(heights) / 2
	if len(heights)%2 == 1 {
		return heights[mid]
	}
	return (heights[mid-1] + heights[mid]) / 2
}

// isContinuationBlock reports whether a block belongs to the previous one:
// it starts with a bullet or an achievements label, is a page footer, or
// carries only a bare duration with no explicit date range.
func isContinuationBlock(block []layout.Line) bool {
	var texts []string
	for _, line := range block {
		if t := strings.TrimSpace(line.Text); t != "" {
			texts = append(texts, t)
		}
	}
	if len(texts) == 0 {
		return false
	}
	first := strings.ToLower(texts[0])
	if strings.HasPrefix(first, "achievements") {
		return true
	}
	if isBulletLine(texts[0]) {
		return true
	}
	if sections.IsPageFooter(texts[0]) {
		return true
	}
	hasDate := false
	for _, text := range texts {
		if dates.HasRange(text) {
			hasDate = true
			break
		}
	}
	if !hasDate {
		for _, text := range texts {
			if isDurationLine(text) {
				return true
			}
		}
	}
	return false
}

// splitEducationBlocks pairs each institution line with a following line
// when it looks like a degree (a date, a parenthesized year, or a degree
// keyword). A bare trailing year line is merged into the degree line by
// duplicating it with replaced text; Lines are never mutated in place.
func splitEducationBlocks(lines []layout.Line) [][]layout.Line {
	var cleaned []layout.Line
	for _, line := range lines {
		if !sections.IsPageFooter(line.Text) {
			cleaned = append(cleaned, line)
		}
	}

	var blocks [][]layout.Line
	for i := 0; i < len(cleaned); i++ {
		if strings.TrimSpace(cleaned[i].Text) == "" {
			continue
		}
		block := []layout.Line{cleaned[i]}
		if i+1 < len(cleaned) {
			next := cleaned[i+1]
			if looksLikeDegreeLine(strings.TrimSpace(next.Text)) {
				if i+2 < len(cleaned) && isTrailingYearLine(cleaned[i+2].Text) {
					mergedLine := next
					mergedLine.Text = strings.TrimSpace(next.Text + " " + cleaned[i+2].Text)
					block = append(block, mergedLine)
					i += 2
				} else {
					block = append(block, next)
					i++
				}
			}
		}
		blocks = append(blocks, block)
	}
	return blocks
}
