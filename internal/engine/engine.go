// Package engine orchestrates a full render pass: style resolution,
// numbering, in-text rewriting and bibliography assembly.
package engine

import (
	"github.com/ronginooth/citepress/internal/citesort"
	"github.com/ronginooth/citepress/internal/fieldcode"
	"github.com/ronginooth/citepress/internal/numbering"
	"github.com/ronginooth/citepress/internal/paper"
	"github.com/ronginooth/citepress/internal/render"
	"github.com/ronginooth/citepress/internal/style"
)

// Request carries one document render. Paper records referenced by
// citations may be attached inline on the citation or supplied in the
// Papers map keyed by paper id.
type Request struct {
	Paragraphs []paper.Paragraph       `json:"paragraphs"`
	Citations  []paper.Citation        `json:"citations"`
	Papers     map[string]*paper.Paper `json:"papers,omitempty"`

	StyleID string        `json:"style_id"`
	Format  render.Format `json:"format,omitempty"`

	// Inline overrides the style-derived in-text config when non-nil.
	Inline *render.InlineConfig `json:"inline,omitempty"`
}

// Result is a completed render. Paragraph order matches the request.
type Result struct {
	Style        string                `json:"style"`
	Paragraphs   []paper.Paragraph     `json:"paragraphs"`
	Bibliography []string              `json:"bibliography"`
	Entries      []numbering.Entry     `json:"-"`
	Numbers      map[string]int        `json:"numbers"`
	Orphans      []fieldcode.FieldCode `json:"orphans,omitempty"`
}

// Engine renders documents against a style registry. It holds no mutable
// state; one engine may serve concurrent renders.
type Engine struct {
	styles *style.Registry
}

// New creates an engine backed by the given registry.
func New(styles *style.Registry) *Engine {
	return &Engine{styles: styles}
}

// Render performs a full render pass. It never fails: malformed inputs
// degrade per the component contracts, and inconsistencies surface in
// Result.Orphans for the caller to report as warnings.
func (e *Engine) Render(req Request) Result {
	st := e.styles.Resolve(req.StyleID)

	format := req.Format
	if format == "" {
		format = render.Plain
	}

	inline := render.DefaultInlineConfig(st)
	if req.Inline != nil {
		inline = *req.Inline
	}

	citations := attachPapers(req.Citations, req.Papers)
	mode := numbering.ModeForStyle(st)
	entries, numbers := numbering.Resolve(citations, req.Paragraphs, mode)

	byID := make(map[string]paper.Citation, len(citations))
	knownIDs := make(map[string]bool, len(citations))
	for _, c := range citations {
		byID[c.ID] = c
		knownIDs[c.ID] = true
	}

	result := Result{
		Style:   st.ID,
		Entries: entries,
		Numbers: numbers,
	}

	result.Paragraphs = make([]paper.Paragraph, len(req.Paragraphs))
	for i, para := range req.Paragraphs {
		result.Orphans = append(result.Orphans, fieldcode.Validate(para.Content, knownIDs)...)
		result.Paragraphs[i] = paper.Paragraph{
			ID:      para.ID,
			Content: render.RenderParagraph(para.Content, byID, numbers, st, inline),
		}
	}

	result.Bibliography = bibliography(entries, st, format, mode)
	return result
}

// bibliography lays out the deduplicated entries with the style's own
// sorter and renders each. Appearance-numbered bibliographies pair each
// entry with its number; alphabetical ones are unnumbered.
func bibliography(entries []numbering.Entry, st style.Style, format render.Format, mode string) []string {
	reps := make([]paper.Citation, 0, len(entries))
	byPaper := make(map[string]numbering.Entry, len(entries))
	for _, e := range entries {
		rep := e.Citation
		rep.PaperID = e.PaperID
		if rep.Paper == nil {
			rep.Paper = e.Paper
		}
		reps = append(reps, rep)
		byPaper[e.PaperID] = e
	}

	sorted := citesort.Sort(reps, st.Sort)

	out := make([]string, 0, len(sorted))
	for _, rep := range sorted {
		entry := byPaper[rep.PaperID]
		if entry.Paper == nil {
			continue
		}
		if mode == numbering.OrderAppearance {
			out = append(out, render.NumberedReference(*entry.Paper, st, format, entry.Number))
		} else {
			out = append(out, render.Reference(*entry.Paper, st, format))
		}
	}
	return out
}

// attachPapers returns citations with paper records resolved from the
// lookup map where the citation carries none. The input is not mutated.
func attachPapers(citations []paper.Citation, papers map[string]*paper.Paper) []paper.Citation {
	if len(papers) == 0 {
		return citations
	}
	out := make([]paper.Citation, len(citations))
	copy(out, citations)
	for i := range out {
		if out[i].Paper == nil {
			out[i].Paper = papers[out[i].PaperID]
		}
	}
	return out
}
