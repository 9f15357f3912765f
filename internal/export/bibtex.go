// Package export converts bibliography entries to external formats.
package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ronginooth/citepress/internal/author"
	"github.com/ronginooth/citepress/internal/numbering"
	"github.com/ronginooth/citepress/internal/paper"
)

// ToBibTeX converts a paper to a BibTeX entry.
func ToBibTeX(p paper.Paper) string {
	entryType := determineEntryType(p)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, CiteKey(p)))

	if len(p.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", formatAuthors(p.Authors)))
	}

	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(p.Title)))

	if p.Venue != "" {
		fieldName := "journal"
		if entryType == "inproceedings" {
			fieldName = "booktitle"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", fieldName, escapeLatex(p.Venue)))
	}

	if p.Year != 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", p.Year.Int()))
	}

	if p.Volume != "" {
		b.WriteString(fmt.Sprintf("  volume = {%s},\n", escapeLatex(p.Volume)))
	}
	if p.Issue != "" {
		b.WriteString(fmt.Sprintf("  number = {%s},\n", escapeLatex(p.Issue)))
	}
	if p.Pages != "" {
		b.WriteString(fmt.Sprintf("  pages = {%s},\n", escapeLatex(p.Pages)))
	} else if p.ArticleNumber != "" {
		b.WriteString(fmt.Sprintf("  pages = {%s},\n", escapeLatex(p.ArticleNumber)))
	}

	if p.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", p.DOI))
	}

	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts resolved bibliography entries to BibTeX, in entry
// order. Entries without an attached paper record are skipped.
func ToBibTeXList(entries []numbering.Entry) string {
	var out []string
	for _, e := range entries {
		if e.Paper == nil {
			continue
		}
		out = append(out, ToBibTeX(*e.Paper))
	}
	return strings.Join(out, "\n")
}

// CiteKey builds a BibTeX citation key from the first author's surname and
// the year, e.g. "smith2020". Falls back to the paper ID when no author
// surname is available.
func CiteKey(p paper.Paper) string {
	if len(p.Authors) == 0 {
		return p.ID
	}

	surname := author.ExtractLastName(p.Authors[0])
	var b strings.Builder
	for _, r := range surname {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 {
		return p.ID
	}
	if p.Year != 0 {
		fmt.Fprintf(&b, "%d", p.Year.Int())
	}
	return b.String()
}

// determineEntryType returns the BibTeX entry type for a paper.
func determineEntryType(p paper.Paper) string {
	venue := strings.ToLower(p.Venue)

	// Preprints
	if strings.Contains(venue, "arxiv") ||
		strings.Contains(venue, "biorxiv") ||
		strings.Contains(venue, "medrxiv") {
		return "article"
	}

	// Conference proceedings
	if strings.Contains(venue, "proceedings") ||
		strings.Contains(venue, "conference") ||
		strings.Contains(venue, "workshop") ||
		strings.Contains(venue, "symposium") {
		return "inproceedings"
	}

	return "article"
}

// formatAuthors formats authors in BibTeX style: "Last, First and Last, First".
// Entries follow the engine's surname-first convention; names already in
// "Last, First" form pass through unchanged.
func formatAuthors(authors []string) string {
	var formatted []string
	for _, name := range authors {
		formatted = append(formatted, bibtexName(name))
	}
	return strings.Join(formatted, " and ")
}

func bibtexName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ",") {
		return escapeLatex(name)
	}

	fields := strings.Fields(name)
	if len(fields) < 2 {
		return escapeLatex(name)
	}
	return escapeLatex(fmt.Sprintf("%s, %s", fields[0], strings.Join(fields[1:], " ")))
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
