package render

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ronginooth/citepress/internal/author"
	"github.com/ronginooth/citepress/internal/paper"
	"github.com/ronginooth/citepress/internal/style"
)

// doiPrefix is prepended to bare DOIs.
const doiPrefix = "https://doi.org/"

var whitespaceRe = regexp.MustCompile(`\s+`)

// placeholderRe matches the template vocabulary, with the adjacent
// volume/pages pair as a single token so a missing half never leaves a
// dangling comma.
var placeholderRe = regexp.MustCompile(`\{volume\}, \{pages\}|\{(?:authors|title|journal|volume|pages|year|doi)\}`)

// Reference renders one bibliography entry for a paper in the given style
// and output format. Missing optional fields degrade to omission; the
// function never fails.
func Reference(p paper.Paper, st style.Style, f Format) string {
	fragments := map[string]string{
		"{authors}": author.Format(p.Authors, st.AuthorRules),
		"{title}":   titleFragment(p, st.Title),
		"{journal}": journalFragment(p, st.Journal, f),
		"{volume}":  volumeFragment(p, st.Volume, f),
		"{pages}":   pagesFragment(p, st.Volume),
		"{year}":    yearFragment(p, st.Year),
		"{doi}":     doiFragment(p, st.DOI),
	}

	out := expandTemplate(st.Template, fragments)

	out = whitespaceRe.ReplaceAllString(out, " ")
	// A comma-format year substitutes as ", 2020" and leaves a space
	// before the comma; tighten it. Empty trailing fragments can leave a
	// dangling comma at the end of the entry.
	out = strings.ReplaceAll(out, " ,", ",")
	out = strings.TrimRight(out, ", ")
	return strings.TrimSpace(out)
}

// expandTemplate substitutes placeholders in one left-to-right pass over
// the template. Spliced fragments are never rescanned, so paper data that
// happens to contain placeholder syntax passes through untouched, and
// output is stable across invocations. Unrecognized braces are left as-is.
func expandTemplate(tmpl string, fragments map[string]string) string {
	matches := placeholderRe.FindAllStringIndex(tmpl, -1)
	if len(matches) == 0 {
		return tmpl
	}

	var b strings.Builder
	prev := 0
	for _, m := range matches {
		b.WriteString(tmpl[prev:m[0]])
		token := tmpl[m[0]:m[1]]
		if token == "{volume}, {pages}" {
			b.WriteString(joinNonEmpty(", ", fragments["{volume}"], fragments["{pages}"]))
		} else {
			b.WriteString(fragments[token])
		}
		prev = m[1]
	}
	b.WriteString(tmpl[prev:])
	return b.String()
}

// NumberedReference renders a bibliography entry prefixed with its
// assigned number, as "<n>. <entry>".
func NumberedReference(p paper.Paper, st style.Style, f Format, number int) string {
	return fmt.Sprintf("%d. %s", number, Reference(p, st, f))
}

func titleFragment(p paper.Paper, rules style.TitleRules) string {
	if !rules.Include || strings.TrimSpace(p.Title) == "" {
		return ""
	}
	title := strings.TrimSpace(p.Title)
	if rules.SentenceCase {
		runes := []rune(title)
		runes[0] = unicode.ToUpper(runes[0])
		title = string(runes)
	}
	if rules.EndPunctuation != "" && !strings.HasSuffix(title, rules.EndPunctuation) {
		title += rules.EndPunctuation
	}
	return title
}

func journalFragment(p paper.Paper, rules style.JournalRules, f Format) string {
	name := ""
	switch {
	case rules.UseVenue && strings.TrimSpace(p.Venue) != "":
		name = strings.TrimSpace(p.Venue)
	case rules.FallbackAbbreviation != "":
		name = rules.FallbackAbbreviation
	default:
		name = strings.TrimSpace(p.Venue)
	}
	if name == "" {
		return ""
	}
	if rules.UseItalic {
		return f.Italic(name)
	}
	return name
}

func volumeFragment(p paper.Paper, rules style.VolumeRules, f Format) string {
	if !rules.Include || strings.TrimSpace(p.Volume) == "" {
		return ""
	}
	vol := strings.TrimSpace(p.Volume)
	if rules.UseBold {
		vol = f.Bold(vol)
	}
	if rules.IncludeIssue && strings.TrimSpace(p.Issue) != "" {
		vol += "(" + strings.TrimSpace(p.Issue) + ")"
	}
	return vol
}

func pagesFragment(p paper.Paper, rules style.VolumeRules) string {
	switch rules.Format {
	case style.PagesArticleNumber:
		if strings.TrimSpace(p.ArticleNumber) != "" {
			return strings.TrimSpace(p.ArticleNumber)
		}
		return strings.TrimSpace(p.Pages)
	case style.PagesStartOnly:
		pages := strings.TrimSpace(p.Pages)
		if idx := strings.IndexAny(pages, "-–"); idx >= 0 {
			return pages[:idx]
		}
		return pages
	default: // style.PagesRange
		return strings.TrimSpace(p.Pages)
	}
}

func yearFragment(p paper.Paper, rules style.YearRules) string {
	if p.Year == 0 {
		return ""
	}
	switch rules.Format {
	case style.YearComma:
		return fmt.Sprintf(", %d", p.Year.Int())
	default:
		return fmt.Sprintf("(%d)", p.Year.Int())
	}
}

func doiFragment(p paper.Paper, rules style.DOIRules) string {
	if !rules.Include {
		return ""
	}
	doi := strings.TrimSpace(p.DOI)
	if doi == "" {
		return ""
	}
	if strings.HasPrefix(doi, "doi:") || strings.HasPrefix(doi, doiPrefix) {
		return doi
	}
	return doiPrefix + doi
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
