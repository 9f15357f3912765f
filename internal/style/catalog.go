package style

import (
	"sort"

	"github.com/ronginooth/citepress/internal/author"
)

// Fallback is the style used when a requested id matches neither a user
// style nor the system catalog. Numeric citation-order with conservative
// formatting.
var Fallback = Style{
	ID:          "default",
	Name:        "default",
	DisplayName: "Default (numeric)",
	Sort:        SortConfig{Mode: SortCitationOrder},
	AuthorRules: author.Rules{
		EtAlAfter:      6,
		Delimiter:      ", ",
		FinalDelimiter: ", ",
		Format:         author.FormatLastInitial,
	},
	Title:    TitleRules{Include: true, SentenceCase: true, EndPunctuation: "."},
	Journal:  JournalRules{UseVenue: true, UseItalic: false},
	Volume:   VolumeRules{Include: true, Format: PagesRange},
	Year:     YearRules{Format: YearParentheses},
	DOI:      DOIRules{Include: true},
	Template: "{authors} {title} {journal} {volume}, {pages} {year} {doi}",
}

// catalog is the bundled system style catalog, keyed by style id.
var catalog = map[string]Style{
	"nature": {
		ID:          "nature",
		Name:        "nature",
		DisplayName: "Nature",
		Sort:        SortConfig{Mode: SortCitationOrder},
		AuthorRules: author.Rules{
			EtAlAfter:      5,
			Delimiter:      ", ",
			FinalDelimiter: " & ",
			Format:         author.FormatLastInitial,
		},
		Title:    TitleRules{Include: true, SentenceCase: true, EndPunctuation: "."},
		Journal:  JournalRules{UseVenue: true, UseItalic: true},
		Volume:   VolumeRules{Include: true, UseBold: true, Format: PagesRange},
		Year:     YearRules{Format: YearParentheses},
		DOI:      DOIRules{Include: false},
		Template: "{authors} {title} {journal} {volume}, {pages} {year}",
	},
	"science": {
		ID:          "science",
		Name:        "science",
		DisplayName: "Science",
		Sort:        SortConfig{Mode: SortCitationOrder},
		AuthorRules: author.Rules{
			EtAlAfter:      5,
			Delimiter:      ", ",
			FinalDelimiter: ", ",
			Format:         author.FormatLastInitial,
		},
		Title:    TitleRules{Include: true, SentenceCase: true, EndPunctuation: "."},
		Journal:  JournalRules{UseVenue: true, UseItalic: true},
		Volume:   VolumeRules{Include: true, UseBold: true, Format: PagesStartOnly},
		Year:     YearRules{Format: YearParentheses},
		DOI:      DOIRules{Include: false},
		Template: "{authors} {title} {journal} {volume}, {pages} {year}",
	},
	"vancouver": {
		ID:          "vancouver",
		Name:        "vancouver",
		DisplayName: "Vancouver",
		Sort:        SortConfig{Mode: SortCitationOrder},
		AuthorRules: author.Rules{
			EtAlAfter:      6,
			Delimiter:      ", ",
			FinalDelimiter: ", ",
			Format:         author.FormatLastInitial,
		},
		Title:    TitleRules{Include: true, SentenceCase: true, EndPunctuation: "."},
		Journal:  JournalRules{UseVenue: true, UseItalic: false},
		Volume:   VolumeRules{Include: true, IncludeIssue: true, Format: PagesRange},
		Year:     YearRules{Format: YearParentheses},
		DOI:      DOIRules{Include: true},
		Template: "{authors} {title} {journal} {year} {volume}, {pages} {doi}",
	},
	"plos": {
		ID:          "plos",
		Name:        "plos",
		DisplayName: "PLOS",
		Sort:        SortConfig{Mode: SortCitationOrder},
		AuthorRules: author.Rules{
			EtAlAfter:      7,
			Delimiter:      ", ",
			FinalDelimiter: ", ",
			Format:         author.FormatLastInitial,
		},
		Title:    TitleRules{Include: true, SentenceCase: true, EndPunctuation: "."},
		Journal:  JournalRules{UseVenue: true, UseItalic: false},
		Volume:   VolumeRules{Include: true, Format: PagesArticleNumber},
		Year:     YearRules{Format: YearParentheses},
		DOI:      DOIRules{Include: true},
		Template: "{authors} {title} {journal} {year} {volume}, {pages} {doi}",
	},
	"apa": {
		ID:          "apa",
		Name:        "apa",
		DisplayName: "APA 7th",
		Sort:        SortConfig{Mode: SortAlphabetical},
		AuthorRules: author.Rules{
			MaxAuthors:     2,
			EtAlAfter:      20,
			Delimiter:      ", ",
			FinalDelimiter: ", & ",
			Format:         author.FormatLastInitial,
		},
		Title:    TitleRules{Include: true, SentenceCase: true, EndPunctuation: "."},
		Journal:  JournalRules{UseVenue: true, UseItalic: true},
		Volume:   VolumeRules{Include: true, IncludeIssue: true, Format: PagesRange},
		Year:     YearRules{Format: YearParentheses},
		DOI:      DOIRules{Include: true},
		Template: "{authors} {year} {title} {journal}, {volume}, {pages} {doi}",
	},
	"chicago": {
		ID:          "chicago",
		Name:        "chicago",
		DisplayName: "Chicago (author-date)",
		Sort:        SortConfig{Mode: SortAlphabetical},
		AuthorRules: author.Rules{
			MaxAuthors:     3,
			EtAlAfter:      10,
			Delimiter:      ", ",
			FinalDelimiter: ", and ",
			Format:         author.FormatLastFirst,
		},
		Title:    TitleRules{Include: true, SentenceCase: false, EndPunctuation: "."},
		Journal:  JournalRules{UseVenue: true, UseItalic: true},
		Volume:   VolumeRules{Include: true, IncludeIssue: true, Format: PagesRange},
		Year:     YearRules{Format: YearComma},
		DOI:      DOIRules{Include: true},
		Template: "{authors} {year} {title} {journal} {volume}, {pages} {doi}",
	},
}

// SystemStyles returns the bundled catalog sorted by style id. User styles
// are intentionally excluded.
func SystemStyles() []Style {
	styles := make([]Style, 0, len(catalog))
	for _, s := range catalog {
		styles = append(styles, s)
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i].ID < styles[j].ID })
	return styles
}
