package citesort

import (
	"testing"

	"github.com/ronginooth/citepress/internal/paper"
	"github.com/ronginooth/citepress/internal/style"
)

func cite(id, paragraphID string, order int, p *paper.Paper) paper.Citation {
	return paper.Citation{ID: id, ParagraphID: paragraphID, Order: order, Paper: p}
}

func pap(firstAuthor string, year int, volume string) *paper.Paper {
	return &paper.Paper{
		Authors: paper.AuthorList{firstAuthor},
		Year:    paper.Year(year),
		Volume:  volume,
	}
}

func ids(citations []paper.Citation) []string {
	out := make([]string, len(citations))
	for i, c := range citations {
		out[i] = c.ID
	}
	return out
}

func assertOrder(t *testing.T, got []paper.Citation, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestSortCitationOrder(t *testing.T) {
	citations := []paper.Citation{
		cite("c3", "P2", 0, nil),
		cite("c1", "P1", 1, nil),
		cite("c2", "P1", 0, nil),
		cite("c4", "", 5, nil), // paragraph-less floats to the front
	}

	got := Sort(citations, style.SortConfig{Mode: style.SortCitationOrder})
	assertOrder(t, got, "c4", "c2", "c1", "c3")
}

func TestSortCitationOrderNonNumericParagraph(t *testing.T) {
	citations := []paper.Citation{
		cite("c1", "P3", 0, nil),
		cite("c2", "intro", 0, nil), // non-numeric identifier sorts as 0
	}
	got := Sort(citations, style.SortConfig{Mode: style.SortCitationOrder})
	assertOrder(t, got, "c2", "c1")
}

func TestSortAlphabetical(t *testing.T) {
	citations := []paper.Citation{
		cite("c1", "P1", 0, pap("Zimmer, A", 2020, "")),
		cite("c2", "P2", 0, pap("adams, B", 2019, "")), // case-insensitive
		cite("c3", "P3", 0, pap("Müller, C", 2018, "")),
	}

	got := Sort(citations, style.SortConfig{Mode: style.SortAlphabetical})
	assertOrder(t, got, "c2", "c3", "c1")
}

func TestSortAlphabeticalMissingPaperFirst(t *testing.T) {
	citations := []paper.Citation{
		cite("c1", "P1", 0, pap("Adams, B", 2019, "")),
		cite("c2", "P2", 0, nil),
	}
	got := Sort(citations, style.SortConfig{Mode: style.SortAlphabetical})
	assertOrder(t, got, "c2", "c1")
}

func TestSortYearThenAuthor(t *testing.T) {
	citations := []paper.Citation{
		cite("c1", "P1", 0, pap("Adams, B", 2021, "")),
		cite("c2", "P2", 0, pap("Zimmer, A", 2019, "")),
		cite("c3", "P3", 0, pap("Baker, C", 2021, "")),
		cite("c4", "P4", 0, nil), // missing year counts as 0
	}

	got := Sort(citations, style.SortConfig{Mode: style.SortYearAuthor})
	assertOrder(t, got, "c4", "c2", "c1", "c3")
}

func TestSortVolumeYear(t *testing.T) {
	citations := []paper.Citation{
		cite("c1", "P1", 0, pap("A", 2020, "12")),
		cite("c2", "P2", 0, pap("B", 2019, "3")),
		cite("c3", "P3", 0, pap("C", 2018, "12")), // same volume, earlier year
		cite("c4", "P4", 0, pap("D", 2017, "suppl")), // non-numeric volume counts as 0
	}

	got := Sort(citations, style.SortConfig{Mode: style.SortVolumeYear})
	assertOrder(t, got, "c4", "c2", "c3", "c1")
}

func TestSortUnknownModeDefaultsToCitationOrder(t *testing.T) {
	citations := []paper.Citation{
		cite("c2", "P2", 0, nil),
		cite("c1", "P1", 0, nil),
	}
	got := Sort(citations, style.SortConfig{Mode: "mystery"})
	assertOrder(t, got, "c1", "c2")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	citations := []paper.Citation{
		cite("c2", "P2", 0, nil),
		cite("c1", "P1", 0, nil),
	}
	_ = Sort(citations, style.SortConfig{Mode: style.SortCitationOrder})
	assertOrder(t, citations, "c2", "c1")
}

func TestSortIsStable(t *testing.T) {
	// Identical keys keep their input order.
	citations := []paper.Citation{
		cite("c1", "P1", 0, pap("Smith, A", 2020, "")),
		cite("c2", "P1", 0, pap("Smith, B", 2020, "")),
	}
	got := Sort(citations, style.SortConfig{Mode: style.SortYearAuthor})
	assertOrder(t, got, "c1", "c2")
}
