// Package style defines citation style data and its resolution rules.
package style

import (
	"github.com/ronginooth/citepress/internal/author"
)

// Sort modes. Unknown modes are treated as SortCitationOrder at sort time.
const (
	SortCitationOrder = "citation-order"
	SortAlphabetical  = "alphabetical"
	SortYearAuthor    = "year-then-author"
	SortVolumeYear    = "volume-year"
)

// Volume/pages format values.
const (
	PagesRange         = "range"          // pages string verbatim
	PagesStartOnly     = "start-only"     // substring before the first hyphen/en-dash
	PagesArticleNumber = "article-number" // prefer article number, falling back to pages
)

// Year format values.
const (
	YearParentheses = "parentheses" // "(2020)"
	YearComma       = "comma"       // ", 2020"
)

// Template placeholders every style template must contain.
var RequiredPlaceholders = []string{"{authors}", "{journal}", "{year}"}

// Style is a complete citation style definition. System styles are
// immutable constants; user styles are created via the importer and
// treated identically once loaded.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`

	Sort        SortConfig   `json:"sort"`
	AuthorRules author.Rules `json:"authorRules"`
	Title       TitleRules   `json:"title"`
	Journal     JournalRules `json:"journal"`
	Volume      VolumeRules  `json:"volume"`
	Year        YearRules    `json:"year"`
	DOI         DOIRules     `json:"doi"`

	// Template combines rendered fragments. Recognized placeholders:
	// {authors} {title} {journal} {volume} {pages} {year} {doi}
	Template string `json:"template"`
}

// SortConfig selects the ordering policy for citations and bibliography.
type SortConfig struct {
	Mode string `json:"mode"`
}

// TitleRules controls the title fragment of a rendered reference.
type TitleRules struct {
	Include        bool   `json:"include"`
	SentenceCase   bool   `json:"sentenceCase,omitempty"`
	EndPunctuation string `json:"endPunctuation,omitempty"`
}

// JournalRules controls the journal fragment.
type JournalRules struct {
	UseVenue             bool   `json:"useVenue"`
	FallbackAbbreviation string `json:"fallbackAbbreviation,omitempty"`
	UseItalic            bool   `json:"useItalic"`
}

// VolumeRules controls the volume and pages fragments.
type VolumeRules struct {
	Include      bool   `json:"include"`
	UseBold      bool   `json:"useBold,omitempty"`
	IncludeIssue bool   `json:"includeIssue,omitempty"`
	Format       string `json:"format,omitempty"` // PagesRange, PagesStartOnly or PagesArticleNumber
}

// YearRules controls the year fragment.
type YearRules struct {
	Format string `json:"format"` // YearParentheses or YearComma
}

// DOIRules controls the DOI fragment.
type DOIRules struct {
	Include bool `json:"include"`
}
