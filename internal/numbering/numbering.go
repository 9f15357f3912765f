// Package numbering deduplicates citations by underlying paper and
// assigns each unique paper a stable bibliography number.
package numbering

import (
	"sort"

	"github.com/ronginooth/citepress/internal/citesort"
	"github.com/ronginooth/citepress/internal/fieldcode"
	"github.com/ronginooth/citepress/internal/paper"
	"github.com/ronginooth/citepress/internal/style"
)

// Number-assignment policies.
const (
	OrderAlphabetical = "alphabetical"
	OrderAppearance   = "appearance"
)

// Entry is the canonical deduplicated view of one cited paper: the unit
// that receives a bibliography number.
type Entry struct {
	PaperID  string
	Paper    *paper.Paper
	Citation paper.Citation // representative: earliest recorded citation of the paper
	// CitationIDs lists every citation of this paper, used to locate
	// markers during appearance ordering.
	CitationIDs []string
	Number      int
}

// ModeForStyle maps a style's sort mode to a numbering policy:
// alphabetical sorting numbers alphabetically, everything else numbers by
// first appearance in the prose.
func ModeForStyle(st style.Style) string {
	if st.Sort.Mode == style.SortAlphabetical {
		return OrderAlphabetical
	}
	return OrderAppearance
}

// Resolve groups citations by paper, orders the unique papers per the
// requested policy and assigns numbers 1..N. It returns the ordered
// entries and the paperID→number map consumed by the in-text renderer.
// Never fails: malformed or partial citation data degrades through the
// strategy chain rather than erroring.
func Resolve(citations []paper.Citation, paragraphs []paper.Paragraph, mode string) ([]Entry, map[string]int) {
	entries := Deduplicate(citations)

	var strategies []strategy
	if mode == OrderAlphabetical {
		strategies = []strategy{alphabeticalStrategy{}}
	} else {
		strategies = []strategy{
			appearanceStrategy{paragraphs: paragraphs},
			citationOrderStrategy{},
			alphabeticalStrategy{},
		}
	}

	for _, s := range strategies {
		ordered, ok := s.order(entries)
		if !ok {
			continue
		}
		entries = ordered
		break
	}

	numbers := make(map[string]int, len(entries))
	for i := range entries {
		entries[i].Number = i + 1
		numbers[entries[i].PaperID] = i + 1
	}
	return entries, numbers
}

// Deduplicate groups citations by resolved paper id and selects each
// group's representative: the earliest citation by paragraph number then
// insertion order. Citations with neither a resolvable paper id nor an
// attached paper record are discarded. Group order follows first
// occurrence in the input, so the result is deterministic before any
// ordering strategy runs.
func Deduplicate(citations []paper.Citation) []Entry {
	index := make(map[string]int)
	var entries []Entry

	for _, c := range citations {
		id := c.ResolvePaperID()
		if id == "" {
			continue
		}

		i, ok := index[id]
		if !ok {
			index[id] = len(entries)
			entries = append(entries, Entry{
				PaperID:     id,
				Paper:       c.Paper,
				Citation:    c,
				CitationIDs: []string{c.ID},
			})
			continue
		}

		entries[i].CitationIDs = append(entries[i].CitationIDs, c.ID)
		if entries[i].Paper == nil && c.Paper != nil {
			entries[i].Paper = c.Paper
		}
		if earlier(c, entries[i].Citation) {
			entries[i].Citation = c
		}
	}

	return entries
}

// earlier reports whether a was recorded before b: lower paragraph number
// first, then lower insertion order.
func earlier(a, b paper.Citation) bool {
	pa, pb := paper.ParagraphNumber(a.ParagraphID), paper.ParagraphNumber(b.ParagraphID)
	if pa != pb {
		return pa < pb
	}
	return a.Order < b.Order
}

// A strategy orders deduplicated entries, or reports that it is not
// applicable to this data so the next strategy in the chain is tried.
// The explicit chain keeps the fallback order auditable and testable in
// isolation.
type strategy interface {
	order(entries []Entry) ([]Entry, bool)
}

// appearanceStrategy orders by the first textual occurrence of any of a
// paper's field code markers when reading the document top to bottom.
// Papers with no locatable marker sort last, tie-broken by the
// representative's paragraph/order metadata. Not applicable when no
// marker of any entry can be located.
type appearanceStrategy struct {
	paragraphs []paper.Paragraph
}

// position is a marker location: paragraph number, then byte offset
// within the paragraph.
type position struct {
	paragraph int
	offset    int
	found     bool
}

func (s appearanceStrategy) order(entries []Entry) ([]Entry, bool) {
	positions := s.locate(entries)

	any := false
	for _, p := range positions {
		if p.found {
			any = true
			break
		}
	}
	if !any {
		return nil, false
	}

	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := positions[ordered[i].PaperID], positions[ordered[j].PaperID]
		if pi.found != pj.found {
			return pi.found // unlocatable markers sort last
		}
		if !pi.found {
			return earlier(ordered[i].Citation, ordered[j].Citation)
		}
		if pi.paragraph != pj.paragraph {
			return pi.paragraph < pj.paragraph
		}
		return pi.offset < pj.offset
	})
	return ordered, true
}

// locate finds each entry's first marker position by parsing every
// paragraph's content once and keeping the minimum position over the
// entry's citation ids.
func (s appearanceStrategy) locate(entries []Entry) map[string]position {
	// first marker position per citation id
	byCitation := make(map[string]position)
	for _, para := range s.paragraphs {
		pnum := paper.ParagraphNumber(para.ID)
		for _, fc := range fieldcode.Parse(para.Content) {
			cur, seen := byCitation[fc.CitationID]
			cand := position{paragraph: pnum, offset: fc.Start, found: true}
			if !seen || lessPosition(cand, cur) {
				byCitation[fc.CitationID] = cand
			}
		}
	}

	positions := make(map[string]position, len(entries))
	for _, e := range entries {
		best := position{}
		for _, cid := range e.CitationIDs {
			p, ok := byCitation[cid]
			if !ok {
				continue
			}
			if !best.found || lessPosition(p, best) {
				best = p
			}
		}
		positions[e.PaperID] = best
	}
	return positions
}

func lessPosition(a, b position) bool {
	if a.paragraph != b.paragraph {
		return a.paragraph < b.paragraph
	}
	return a.offset < b.offset
}

// citationOrderStrategy orders by the representative citation's paragraph
// and insertion order. Not applicable when no citation carries any
// paragraph/order metadata at all.
type citationOrderStrategy struct{}

func (citationOrderStrategy) order(entries []Entry) ([]Entry, bool) {
	any := false
	for _, e := range entries {
		if e.Citation.HasParagraph() || e.Citation.Order > 0 {
			any = true
			break
		}
	}
	if !any {
		return nil, false
	}

	reps := representatives(entries)
	sorted := citesort.Sort(reps, style.SortConfig{Mode: style.SortCitationOrder})
	return reorder(entries, sorted), true
}

// alphabeticalStrategy is the ultimate fallback; always applicable.
type alphabeticalStrategy struct{}

func (alphabeticalStrategy) order(entries []Entry) ([]Entry, bool) {
	reps := representatives(entries)
	sorted := citesort.Sort(reps, style.SortConfig{Mode: style.SortAlphabetical})
	return reorder(entries, sorted), true
}

// representatives extracts each entry's representative citation with the
// entry's paper attached, keyed back to entries via the paper id.
func representatives(entries []Entry) []paper.Citation {
	reps := make([]paper.Citation, len(entries))
	for i, e := range entries {
		rep := e.Citation
		rep.PaperID = e.PaperID
		if rep.Paper == nil {
			rep.Paper = e.Paper
		}
		reps[i] = rep
	}
	return reps
}

// reorder arranges entries to match the sorted representative order.
func reorder(entries []Entry, sorted []paper.Citation) []Entry {
	byID := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byID[e.PaperID] = e
	}
	ordered := make([]Entry, 0, len(entries))
	for _, c := range sorted {
		ordered = append(ordered, byID[c.PaperID])
	}
	return ordered
}
