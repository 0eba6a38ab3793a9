// Package extract decodes PDF documents into positioned word tokens using
// github.com/ledongthuc/pdf. This is the only pipeline boundary that can
// fail: an unreadable document surfaces a single decoding error here, and
// everything downstream of it is error-free.
package extract

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-parser/resume/layout"
)

// Fallback page geometry (US Letter) for pages without a MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Pages decodes an in-memory PDF into per-page word tokens.
func Pages(data []byte) ([]layout.Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var pages []layout.Page
	for num := 1; num <= reader.NumPage(); num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		width, height := pageSize(page)
		pages = append(pages, layout.Page{
			Index: num - 1,
			Width: width,
			Words: pageWords(page, height),
		})
	}
	return pages, nil
}

func pageSize(page pdf.Page) (width, height float64) {
	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Len() != 4 {
		return defaultPageWidth, defaultPageHeight
	}
	width = mediaBox.Index(2).Float64() - mediaBox.Index(0).Float64()
	height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	if width <= 0 {
		width = defaultPageWidth
	}
	if height <= 0 {
		height = defaultPageHeight
	}
	return width, height
}

// pageWords merges the page's raw text runs into word tokens with top-down
// bounding boxes. PDF coordinates grow upward from the bottom-left corner,
// so vertical positions are flipped against the page height.
func pageWords(page pdf.Page, pageHeight float64) []layout.Word {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	runs := make([]pdf.Text, len(content.Text))
	copy(runs, content.Text)
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Y != runs[j].Y {
			return runs[i].Y > runs[j].Y
		}
		return runs[i].X < runs[j].X
	})

	var words []layout.Word
	builder := wordBuilder{pageHeight: pageHeight}
	for _, run := range runs {
		words = append(words, builder.add(run)...)
	}
	return append(words, builder.flush()...)
}

// wordBuilder accumulates consecutive text runs into words, splitting on
// whitespace runs, baseline changes, and horizontal gaps wider than a
// fraction of the font size.
type wordBuilder struct {
	pageHeight float64
	text       strings.Builder
	left       float64
	right      float64
	baseline   float64
	fontSize   float64
	active     bool
}

func (b *wordBuilder) add(run pdf.Text) []layout.Word {
	if strings.TrimSpace(run.S) == "" {
		return b.flush()
	}
	var out []layout.Word
	if b.active {
		sameBaseline := abs(run.Y-b.baseline) <= 0.5
		if !sameBaseline || run.X-b.right > b.gapThreshold() {
			out = b.flush()
		}
	}
	if !b.active {
		b.active = true
		b.left = run.X
		b.right = run.X
		b.baseline = run.Y
		b.fontSize = run.FontSize
	}
	b.text.WriteString(run.S)
	if end := run.X + run.W; end > b.right {
		b.right = end
	}
	if run.FontSize > b.fontSize {
		b.fontSize = run.FontSize
	}
	return out
}

func (b *wordBuilder) gapThreshold() float64 {
	threshold := b.fontSize * 0.3
	if threshold < 1 {
		threshold = 1
	}
	return threshold
}

func (b *wordBuilder) flush() []layout.Word {
	if !b.active {
		return nil
	}
	word := layout.Word{
		Text:   strings.TrimSpace(b.text.String()),
		Top:    b.pageHeight - b.baseline - b.fontSize,
		Bottom: b.pageHeight - b.baseline,
		Left:   b.left,
		Right:  b.right,
	}
	b.text.Reset()
	b.active = false
	b.left, b.right, b.baseline, b.fontSize = 0, 0, 0, 0
	if word.Text == "" {
		return nil
	}
	return []layout.Word{word}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
