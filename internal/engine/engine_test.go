package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ronginooth/citepress/internal/paper"
	"github.com/ronginooth/citepress/internal/render"
	"github.com/ronginooth/citepress/internal/style"
)

func newEngine() *Engine {
	return New(style.NewRegistry(nil))
}

// Numeric style round trip: a citation-order style rewrites markers to
// bracketed numbers and lists the bibliography in appearance order.
func TestRenderNumericRoundTrip(t *testing.T) {
	p1 := &paper.Paper{ID: "p1", Title: "first paper", Authors: paper.AuthorList{"Smith, J"}, Year: 2020, Venue: "Nature"}
	p2 := &paper.Paper{ID: "p2", Title: "second paper", Authors: paper.AuthorList{"Doe, A"}, Year: 2019, Venue: "Science"}

	req := Request{
		Paragraphs: []paper.Paragraph{
			{ID: "P1", Content: "See [cite:c1:p1] and [cite:c2:p2]."},
		},
		Citations: []paper.Citation{
			{ID: "c1", PaperID: "p1", ParagraphID: "P1", Order: 0, Paper: p1},
			{ID: "c2", PaperID: "p2", ParagraphID: "P1", Order: 1, Paper: p2},
		},
		StyleID: "nature",
		Format:  render.Markdown,
	}

	result := newEngine().Render(req)

	if got := result.Paragraphs[0].Content; got != "See [1] and [2]." {
		t.Errorf("rewritten paragraph = %q, want %q", got, "See [1] and [2].")
	}
	if len(result.Bibliography) != 2 {
		t.Fatalf("bibliography has %d entries, want 2", len(result.Bibliography))
	}
	if !strings.HasPrefix(result.Bibliography[0], "1. Smith") {
		t.Errorf("bibliography[0] = %q, want Smith first", result.Bibliography[0])
	}
	if !strings.HasPrefix(result.Bibliography[1], "2. Doe") {
		t.Errorf("bibliography[1] = %q, want Doe second", result.Bibliography[1])
	}
	if result.Numbers["p1"] != 1 || result.Numbers["p2"] != 2 {
		t.Errorf("numbers = %v", result.Numbers)
	}
	if result.Orphans != nil {
		t.Errorf("orphans = %v, want none", result.Orphans)
	}
}

// Alphabetical dedup: two papers cited twice each collapse to two
// canonical entries ordered by surname, both citations of a paper
// sharing one number.
func TestRenderAlphabeticalDedup(t *testing.T) {
	zimmer := &paper.Paper{ID: "p1", Title: "on z", Authors: paper.AuthorList{"Zimmer, A"}, Year: 2020, Venue: "J. Z."}
	adams := &paper.Paper{ID: "p2", Title: "on a", Authors: paper.AuthorList{"Adams, B"}, Year: 2019, Venue: "J. A."}

	req := Request{
		Paragraphs: []paper.Paragraph{
			{ID: "P1", Content: "First [cite:c1:p1] and [cite:c2:p2]."},
			{ID: "P2", Content: "Again [cite:c3:p1] and [cite:c4:p2]."},
		},
		Citations: []paper.Citation{
			{ID: "c1", PaperID: "p1", ParagraphID: "P1", Order: 0, Paper: zimmer},
			{ID: "c2", PaperID: "p2", ParagraphID: "P1", Order: 1, Paper: adams},
			{ID: "c3", PaperID: "p1", ParagraphID: "P2", Order: 0, Paper: zimmer},
			{ID: "c4", PaperID: "p2", ParagraphID: "P2", Order: 1, Paper: adams},
		},
		StyleID: "apa",
		Format:  render.Plain,
	}

	result := newEngine().Render(req)

	if len(result.Entries) != 2 {
		t.Fatalf("got %d canonical entries, want 2", len(result.Entries))
	}
	if len(result.Bibliography) != 2 {
		t.Fatalf("bibliography has %d entries, want 2", len(result.Bibliography))
	}
	if !strings.Contains(result.Bibliography[0], "Adams") || !strings.Contains(result.Bibliography[0], "2019") {
		t.Errorf("bibliography[0] = %q, want Adams 2019", result.Bibliography[0])
	}
	if !strings.Contains(result.Bibliography[1], "Zimmer") || !strings.Contains(result.Bibliography[1], "2020") {
		t.Errorf("bibliography[1] = %q, want Zimmer 2020", result.Bibliography[1])
	}

	// Both citations of each paper share one number.
	if result.Numbers["p2"] != 1 || result.Numbers["p1"] != 2 {
		t.Errorf("numbers = %v", result.Numbers)
	}

	// Alphabetical styles render author-date, and identical papers render
	// identically in both paragraphs.
	if !strings.Contains(result.Paragraphs[0].Content, "(Zimmer, 2020)") {
		t.Errorf("paragraph 1 = %q", result.Paragraphs[0].Content)
	}
	if !strings.Contains(result.Paragraphs[1].Content, "(Zimmer, 2020)") {
		t.Errorf("paragraph 2 = %q", result.Paragraphs[1].Content)
	}
}

func TestRenderPapersMapAttachment(t *testing.T) {
	req := Request{
		Paragraphs: []paper.Paragraph{{ID: "P1", Content: "x [cite:c1:p1]"}},
		Citations:  []paper.Citation{{ID: "c1", PaperID: "p1", ParagraphID: "P1"}},
		Papers: map[string]*paper.Paper{
			"p1": {ID: "p1", Title: "t", Authors: paper.AuthorList{"Smith, J"}, Year: 2020, Venue: "V"},
		},
		StyleID: "nature",
	}

	result := newEngine().Render(req)
	if got := result.Paragraphs[0].Content; got != "x [1]" {
		t.Errorf("paragraph = %q, want %q", got, "x [1]")
	}
	if len(result.Bibliography) != 1 {
		t.Errorf("bibliography = %v", result.Bibliography)
	}
}

func TestRenderReportsOrphans(t *testing.T) {
	req := Request{
		Paragraphs: []paper.Paragraph{
			{ID: "P1", Content: "known [cite:c1:p1] orphan [cite:c9:p9]"},
		},
		Citations: []paper.Citation{
			{ID: "c1", PaperID: "p1", ParagraphID: "P1", Paper: &paper.Paper{ID: "p1", Authors: paper.AuthorList{"A"}, Year: 2020}},
		},
		StyleID: "nature",
	}

	result := newEngine().Render(req)
	if len(result.Orphans) != 1 || result.Orphans[0].CitationID != "c9" {
		t.Errorf("orphans = %+v, want one c9", result.Orphans)
	}
	// Orphan markers pass through the rewrite untouched.
	if !strings.Contains(result.Paragraphs[0].Content, "[cite:c9:p9]") {
		t.Errorf("paragraph = %q, orphan marker should survive", result.Paragraphs[0].Content)
	}
}

func TestRenderUnknownStyleFallsBack(t *testing.T) {
	req := Request{
		Paragraphs: []paper.Paragraph{{ID: "P1", Content: "x [cite:c1:p1]"}},
		Citations: []paper.Citation{
			{ID: "c1", PaperID: "p1", ParagraphID: "P1", Paper: &paper.Paper{ID: "p1", Authors: paper.AuthorList{"A"}, Year: 2020}},
		},
		StyleID: "does-not-exist",
	}

	result := newEngine().Render(req)
	if result.Style != style.Fallback.ID {
		t.Errorf("style = %q, want fallback", result.Style)
	}
}

func TestRenderInlineOverrideAuthoritative(t *testing.T) {
	// An alphabetical style would default to author-date; explicit config wins.
	req := Request{
		Paragraphs: []paper.Paragraph{{ID: "P1", Content: "x [cite:c1:p1]"}},
		Citations: []paper.Citation{
			{ID: "c1", PaperID: "p1", ParagraphID: "P1", Paper: &paper.Paper{ID: "p1", Authors: paper.AuthorList{"Smith, J"}, Year: 2020}},
		},
		StyleID: "apa",
		Inline:  &render.InlineConfig{Format: render.InlineNumeric, NumericStyle: render.NumericParentheses},
	}

	result := newEngine().Render(req)
	if got := result.Paragraphs[0].Content; got != "x (1)" {
		t.Errorf("paragraph = %q, want %q", got, "x (1)")
	}
}

func TestRenderDeterministic(t *testing.T) {
	req := Request{
		Paragraphs: []paper.Paragraph{{ID: "P1", Content: "a [cite:c1:p1] b [cite:c2:p2]"}},
		Citations: []paper.Citation{
			{ID: "c1", PaperID: "p1", ParagraphID: "P1", Order: 0, Paper: &paper.Paper{ID: "p1", Authors: paper.AuthorList{"A"}, Year: 2020, Venue: "V"}},
			{ID: "c2", PaperID: "p2", ParagraphID: "P1", Order: 1, Paper: &paper.Paper{ID: "p2", Authors: paper.AuthorList{"B"}, Year: 2019, Venue: "W"}},
		},
		StyleID: "nature",
		Format:  render.HTML,
	}

	e := newEngine()
	first := e.Render(req)
	for i := 0; i < 3; i++ {
		again := e.Render(req)
		if !reflect.DeepEqual(again.Paragraphs, first.Paragraphs) {
			t.Fatal("paragraph rewrite not deterministic")
		}
		if !reflect.DeepEqual(again.Bibliography, first.Bibliography) {
			t.Fatal("bibliography not deterministic")
		}
	}
}
