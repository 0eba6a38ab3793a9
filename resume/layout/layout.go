// Package layout reconstructs reading-order lines from positioned word
// tokens and detects two-column page geometry.
package layout

import (
	"sort"
	"strings"
)

// Word is a single decoded token with its bounding box, as produced by the
// document-decoding layer. Input-only; the pipeline never mutates it.
type Word struct {
	Text   string
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Page holds the words of one page plus the page width needed for the
// column-gap threshold.
type Page struct {
	Index int
	Width float64
	Words []Word
}

// Line is a reconstructed run of words believed to form one visual line.
type Line struct {
	Text   string
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
	Page   int
}

const (
	// Words whose vertical positions differ by no more than this belong to
	// the same line band.
	bandTolerance = 2.5

	// Horizontal gaps are measured against max(minColumnGap, 8% of page width).
	minColumnGap     = 30.0
	columnGapPercent = 0.08
)

// BuildLines groups the words of every page into reading-order lines,
// page-major, top-to-bottom, left-to-right. A vertical band is split into
// several lines when a large horizontal gap separates its words, recovering
// sidebar content that shares a vertical position with the main column.
func BuildLines(pages []Page) []Line {
	var lines []Line
	for _, page := range pages {
		lines = append(lines, buildPageLines(page)...)
	}
	return lines
}

func buildPageLines(page Page) []Line {
	if len(page.Words) == 0 {
		return nil
	}

	words := make([]Word, len(page.Words))
	copy(words, page.Words)
	sort.SliceStable(words, func(i, j int) bool {
		if words[i].Top != words[j].Top {
			return words[i].Top < words[j].Top
		}
		return words[i].Left < words[j].Left
	})

	gapThreshold := minColumnGap
	if t := page.Width * columnGapPercent; t > gapThreshold {
		gapThreshold = t
	}

	var lines []Line
	var band []Word
	bandTop := 0.0
	for _, w := range words {
		if len(band) == 0 {
			band = append(band, w)
			bandTop = w.Top
			continue
		}
		if abs(w.Top-bandTop) <= bandTolerance {
			band = append(band, w)
			continue
		}
		lines = append(lines, splitBand(band, page.Index, gapThreshold)...)
		band = []Word{w}
		bandTop = w.Top
	}
	if len(band) > 0 {
		lines = append(lines, splitBand(band, page.Index, gapThreshold)...)
	}
	return lines
}

// splitBand orders a band left-to-right and cuts it into separate lines
// wherever the gap between consecutive words exceeds the threshold.
func splitBand(band []Word, pageIndex int, gapThreshold float64) []Line {
	sort.SliceStable(band, func(i, j int) bool { return band[i].Left < band[j].Left })

	var lines []Line
	var segment []Word
	lastRight := 0.0
	for _, w := range band {
		if len(segment) == 0 {
			segment = append(segment, w)
			lastRight = w.Right
			continue
		}
		if w.Left-lastRight > gapThreshold {
			lines = append(lines, wordsToLine(segment, pageIndex))
			segment = []Word{w}
		} else {
			segment = append(segment, w)
		}
		lastRight = w.Right
	}
	if len(segment) > 0 {
		lines = append(lines, wordsToLine(segment, pageIndex))
	}
	return lines
}

func wordsToLine(words []Word, pageIndex int) Line {
	line := Line{
		Top:    words[0].Top,
		Bottom: words[0].Bottom,
		Left:   words[0].Left,
		Right:  words[0].Right,
		Page:   pageIndex,
	}
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.Text)
		if w.Top < line.Top {
			line.Top = w.Top
		}
		if w.Bottom > line.Bottom {
			line.Bottom = w.Bottom
		}
		if w.Left < line.Left {
			line.Left = w.Left
		}
		if w.Right > line.Right {
			line.Right = w.Right
		}
	}
	line.Text = strings.TrimSpace(strings.Join(parts, " "))
	return line
}

const (
	// Column detection is skipped on short documents to avoid false splits.
	minLinesForColumns = 40

	// The largest left-edge gap must exceed this to count as a column boundary.
	minBoundaryGap = 80.0
)

// DetectColumnSplit finds a vertical boundary between two columns of text.
// It returns the midpoint of the largest gap between sorted line left edges,
// and false when the document is too short or no gap is wide enough.
func DetectColumnSplit(lines []Line) (float64, bool) {
	if len(lines) < minLinesForColumns {
		return 0, false
	}
	lefts := make([]float64, len(lines))
	for i, l := range lines {
		lefts[i] = l.Left
	}
	sort.Float64s(lefts)

	bestGap := 0.0
	bestIdx := 0
	for i := 0; i < len(lefts)-1; i++ {
		if gap := lefts[i+1] - lefts[i]; gap > bestGap {
			bestGap = gap
			bestIdx = i
		}
	}
	if bestGap < minBoundaryGap {
		return 0, false
	}
	return (lefts[bestIdx] + lefts[bestIdx+1]) / 2, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
