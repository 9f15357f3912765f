// Package paper defines the core domain types for cited papers and the
// citations that reference them from document text.
package paper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Paper represents an already-resolved source paper. Records are supplied
// by an external bibliographic layer and are never mutated by the engine.
type Paper struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Authors AuthorList `json:"authors"`
	Year    Year       `json:"year"`
	Venue   string     `json:"venue"`

	// Optional bibliographic detail
	DOI           string `json:"doi,omitempty"`
	Volume        string `json:"volume,omitempty"`
	Issue         string `json:"issue,omitempty"`
	Pages         string `json:"pages,omitempty"`
	ArticleNumber string `json:"article_number,omitempty"`
}

// Citation associates a paper with a location in the document. Multiple
// citations may reference the same paper; they remain distinct records
// until deduplicated by the numbering resolver.
type Citation struct {
	ID          string `json:"id"`
	PaperID     string `json:"paper_id"`
	ParagraphID string `json:"paragraph_id,omitempty"` // external "P<N>" style identifier
	Order       int    `json:"citation_order"`         // insertion sequence within the paragraph
	Paper       *Paper `json:"paper,omitempty"`
}

// Paragraph is a unit of document prose that may contain field code markers.
type Paragraph struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// AuthorList holds an ordered list of author names. It unmarshals from
// either a JSON array of strings or a single delimited string, since
// upstream paper records carry authors in both shapes.
type AuthorList []string

func (a *AuthorList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = AuthorList(list)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AuthorList(SplitAuthors(s))
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into AuthorList", string(data))
}

// SplitAuthors splits a delimited author string on commas and ampersands,
// trimming whitespace and discarding empty entries.
func SplitAuthors(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '&'
	})
	var authors []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			authors = append(authors, p)
		}
	}
	return authors
}

// Year is a publication year that unmarshals from either a JSON number or
// a numeric string. Zero means unknown.
type Year int

func (y *Year) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*y = 0
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*y = Year(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			*y = 0
			return nil
		}
		*y = Year(parsed)
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into Year", string(data))
}

// Int returns the year as a plain int.
func (y Year) Int() int { return int(y) }

// ParagraphNumber extracts the numeric component of a "P<N>" style
// paragraph identifier. Missing or non-numeric identifiers yield 0.
func ParagraphNumber(id string) int {
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, "P")
	id = strings.TrimPrefix(id, "p")
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}

// ResolvePaperID returns the citation's paper identifier, falling back to
// the attached paper record's ID when the citation itself carries none.
// Returns empty string when neither is available.
func (c Citation) ResolvePaperID() string {
	if c.PaperID != "" {
		return c.PaperID
	}
	if c.Paper != nil {
		return c.Paper.ID
	}
	return ""
}

// HasParagraph reports whether the citation carries a paragraph identifier.
func (c Citation) HasParagraph() bool {
	return c.ParagraphID != ""
}
