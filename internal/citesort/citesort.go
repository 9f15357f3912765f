// Package citesort orders citations according to a style's sort policy.
package citesort

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ronginooth/citepress/internal/author"
	"github.com/ronginooth/citepress/internal/paper"
	"github.com/ronginooth/citepress/internal/style"
)

// collator compares surnames case-insensitively at base letter strength,
// so accents and case never split alphabetical ordering.
var collator = collate.New(language.English, collate.Loose)

// Sort returns a stably ordered copy of citations per the sort config.
// The input slice is never mutated. Unknown or empty modes default to
// citation-order.
func Sort(citations []paper.Citation, cfg style.SortConfig) []paper.Citation {
	sorted := make([]paper.Citation, len(citations))
	copy(sorted, citations)

	var less func(a, b paper.Citation) bool
	switch cfg.Mode {
	case style.SortAlphabetical:
		less = lessAlphabetical
	case style.SortYearAuthor:
		less = lessYearAuthor
	case style.SortVolumeYear:
		less = lessVolumeYear
	default:
		less = lessCitationOrder
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// lessCitationOrder orders by numeric paragraph then insertion order.
// Citations without a paragraph float to the front.
func lessCitationOrder(a, b paper.Citation) bool {
	if a.HasParagraph() != b.HasParagraph() {
		return !a.HasParagraph()
	}
	pa, pb := paper.ParagraphNumber(a.ParagraphID), paper.ParagraphNumber(b.ParagraphID)
	if pa != pb {
		return pa < pb
	}
	return a.Order < b.Order
}

func lessAlphabetical(a, b paper.Citation) bool {
	return collator.CompareString(surnameKey(a), surnameKey(b)) < 0
}

func lessYearAuthor(a, b paper.Citation) bool {
	ya, yb := citationYear(a), citationYear(b)
	if ya != yb {
		return ya < yb
	}
	return lessAlphabetical(a, b)
}

func lessVolumeYear(a, b paper.Citation) bool {
	va, vb := numericVolume(a), numericVolume(b)
	if va != vb {
		return va < vb
	}
	return citationYear(a) < citationYear(b)
}

// surnameKey is the first author's surname, or empty when the citation
// has no attached paper or author data.
func surnameKey(c paper.Citation) string {
	if c.Paper == nil || len(c.Paper.Authors) == 0 {
		return ""
	}
	return author.ExtractLastName(c.Paper.Authors[0])
}

func citationYear(c paper.Citation) int {
	if c.Paper == nil {
		return 0
	}
	return c.Paper.Year.Int()
}

// numericVolume parses the leading integer of a volume string; missing or
// non-numeric volumes count as 0.
func numericVolume(c paper.Citation) int {
	if c.Paper == nil {
		return 0
	}
	vol := strings.TrimSpace(c.Paper.Volume)
	end := 0
	for end < len(vol) && vol[end] >= '0' && vol[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(vol[:end])
	if err != nil {
		return 0
	}
	return n
}
