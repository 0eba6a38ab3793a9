package extract

import (
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

func buildWords(runs []pdf.Text, pageHeight float64) []string {
	builder := wordBuilder{pageHeight: pageHeight}
	var texts []string
	for _, run := range runs {
		for _, w := range builder.add(run) {
			texts = append(texts, w.Text)
		}
	}
	for _, w := range builder.flush() {
		texts = append(texts, w.Text)
	}
	return texts
}

func TestWordBuilder_MergesAdjacentRuns(t *testing.T) {
	runs := []pdf.Text{
		{S: "Soft", X: 10, Y: 700, W: 20, FontSize: 10},
		{S: "ware", X: 30.5, Y: 700, W: 20, FontSize: 10},
	}
	got := buildWords(runs, 792)
	if len(got) != 1 || got[0] != "Software" {
		t.Fatalf("expected single merged word, got %v", got)
	}
}

func TestWordBuilder_SplitsOnWideGap(t *testing.T) {
	runs := []pdf.Text{
		{S: "Acme", X: 10, Y: 700, W: 25, FontSize: 10},
		{S: "Corp", X: 60, Y: 700, W: 25, FontSize: 10},
	}
	got := buildWords(runs, 792)
	if len(got) != 2 || got[0] != "Acme" || got[1] != "Corp" {
		t.Fatalf("expected two words, got %v", got)
	}
}

func TestWordBuilder_SplitsOnWhitespaceRun(t *testing.T) {
	runs := []pdf.Text{
		{S: "Senior", X: 10, Y: 700, W: 30, FontSize: 10},
		{S: " ", X: 40, Y: 700, W: 3, FontSize: 10},
		{S: "Engineer", X: 43, Y: 700, W: 40, FontSize: 10},
	}
	got := buildWords(runs, 792)
	if len(got) != 2 || got[0] != "Senior" || got[1] != "Engineer" {
		t.Fatalf("expected two words, got %v", got)
	}
}

func TestWordBuilder_SplitsOnBaselineChange(t *testing.T) {
	runs := []pdf.Text{
		{S: "Line1", X: 10, Y: 700, W: 25, FontSize: 10},
		{S: "Line2", X: 10, Y: 688, W: 25, FontSize: 10},
	}
	got := buildWords(runs, 792)
	if len(got) != 2 {
		t.Fatalf("expected two words across baselines, got %v", got)
	}
}

func TestWordBuilder_FlipsCoordinates(t *testing.T) {
	builder := wordBuilder{pageHeight: 792}
	builder.add(pdf.Text{S: "Name", X: 10, Y: 700, W: 30, FontSize: 12})
	words := builder.flush()
	if len(words) != 1 {
		t.Fatalf("expected one word, got %d", len(words))
	}
	w := words[0]
	if w.Top != 792-700-12 || w.Bottom != 792-700 {
		t.Fatalf("unexpected vertical box top=%v bottom=%v", w.Top, w.Bottom)
	}
	if w.Left != 10 || w.Right != 40 {
		t.Fatalf("unexpected horizontal box left=%v right=%v", w.Left, w.Right)
	}
}

func TestPages_RejectsGarbage(t *testing.T) {
	_, err := Pages([]byte("definitely not a pdf"))
	if err == nil {
		t.Fatal("expected error for non-pdf payload")
	}
	if !strings.Contains(err.Error(), "open pdf") {
		t.Fatalf("unexpected error: %v", err)
	}
}
