package render

import (
	"fmt"

	"github.com/ronginooth/citepress/internal/author"
	"github.com/ronginooth/citepress/internal/fieldcode"
	"github.com/ronginooth/citepress/internal/paper"
	"github.com/ronginooth/citepress/internal/style"
)

// In-text citation forms.
const (
	InlineNumeric    = "numeric"     // "[1]" or "(1)"
	InlineAuthorDate = "author-date" // "(Smith, 2020)"
	InlineAuthorYear = "author-year" // "Smith (2020)"
)

// Numeric marker shapes.
const (
	NumericBrackets    = "brackets"
	NumericParentheses = "parentheses"
)

// InlineConfig controls how field codes render in running text. Per-call
// config is authoritative; the style-derived default is only a
// convenience when the caller supplies none.
type InlineConfig struct {
	Format       string `json:"format"`
	NumericStyle string `json:"numeric_style,omitempty"`
	// MaxAuthors overrides the style's et-al threshold for in-text
	// citations, which commonly truncate more aggressively than the
	// bibliography. Zero keeps the style's threshold.
	MaxAuthors int `json:"max_authors,omitempty"`
}

// DefaultInlineConfig derives an inline config from a style: appearance
// ordering implies numeric bracket markers, alphabetical ordering implies
// author-date.
func DefaultInlineConfig(st style.Style) InlineConfig {
	if st.Sort.Mode == style.SortAlphabetical {
		return InlineConfig{Format: InlineAuthorDate}
	}
	return InlineConfig{Format: InlineNumeric, NumericStyle: NumericBrackets}
}

// Inline resolves a field code to its visible in-text form. number is the
// paper's assigned bibliography number, 0 when none is available. A
// numeric config without a number falls through to author-date; with no
// usable form at all the field code's own display text, then a
// synthesized "(Authors, Year)", are the fallbacks. Never fails.
func Inline(fc fieldcode.FieldCode, p *paper.Paper, st style.Style, number int, cfg InlineConfig) string {
	if cfg.Format == InlineNumeric && number > 0 {
		if cfg.NumericStyle == NumericParentheses {
			return fmt.Sprintf("(%d)", number)
		}
		return fmt.Sprintf("[%d]", number)
	}

	switch cfg.Format {
	case InlineNumeric, InlineAuthorDate:
		if p != nil {
			return fmt.Sprintf("(%s, %s)", inlineAuthors(p, st, cfg), inlineYear(p))
		}
	case InlineAuthorYear:
		if p != nil {
			return fmt.Sprintf("%s (%s)", inlineAuthors(p, st, cfg), inlineYear(p))
		}
	}

	if fc.DisplayText != "" {
		return fc.DisplayText
	}
	if p != nil {
		return fmt.Sprintf("(%s, %s)", inlineAuthors(p, st, cfg), inlineYear(p))
	}
	return fmt.Sprintf("(%s, n.d.)", author.UnknownAuthor)
}

// RenderParagraph substitutes every recognized field code in a paragraph
// with its rendered in-text form. citations maps citation ids to their
// records (with attached papers); numbers maps paper ids to bibliography
// numbers. Markers with unknown citation ids pass through unchanged.
//
// Codes are processed in descending start-offset order: earlier
// substitutions change string length, so low-to-high processing would
// invalidate the remaining offsets.
func RenderParagraph(content string, citations map[string]paper.Citation, numbers map[string]int, st style.Style, cfg InlineConfig) string {
	codes := fieldcode.Parse(content)
	for i := len(codes) - 1; i >= 0; i-- {
		fc := codes[i]
		c, ok := citations[fc.CitationID]
		if !ok {
			continue
		}
		number := numbers[c.ResolvePaperID()]
		rendered := Inline(fc, c.Paper, st, number, cfg)
		content = content[:fc.Start] + rendered + content[fc.End:]
	}
	return content
}

// inlineAuthors formats the paper's authors with the style's rules, with
// the config's in-text et-al threshold taking precedence.
func inlineAuthors(p *paper.Paper, st style.Style, cfg InlineConfig) string {
	rules := st.AuthorRules
	if cfg.MaxAuthors > 0 {
		rules.EtAlAfter = cfg.MaxAuthors
	} else if rules.MaxAuthors > 0 {
		rules.EtAlAfter = rules.MaxAuthors
	}
	// In-text citations cite surnames only.
	surnames := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		if ln := author.ExtractLastName(a); ln != "" {
			surnames = append(surnames, ln)
		}
	}
	rules.Format = author.FormatLastFirst
	return author.Format(surnames, rules)
}

func inlineYear(p *paper.Paper) string {
	if p.Year == 0 {
		return "n.d."
	}
	return fmt.Sprintf("%d", p.Year.Int())
}
