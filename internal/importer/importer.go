// Package importer validates and imports externally supplied citation
// style definitions. All import shapes funnel through the same validator;
// import failures are user-correctable authoring errors and carry a
// specific reason.
package importer

import (
	"encoding/json"
	"fmt"

	"github.com/ronginooth/citepress/internal/author"
	"github.com/ronginooth/citepress/internal/style"
)

// ImportJSON imports a style from raw JSON text.
func ImportJSON(data []byte) (*style.Style, error) {
	s, err := style.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("importing style: %w", err)
	}
	return s, nil
}

// FormPayload is the structured form shape an editor submits when a user
// authors a style by hand.
type FormPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	SortMode    string `json:"sort_mode"`
	Template    string `json:"template"`

	EtAlAfter      int    `json:"et_al_after"`
	MaxAuthors     int    `json:"max_authors"`
	Delimiter      string `json:"delimiter"`
	FinalDelimiter string `json:"final_delimiter"`
	NameFormat     string `json:"name_format"`

	IncludeTitle   bool   `json:"include_title"`
	SentenceCase   bool   `json:"sentence_case"`
	EndPunctuation string `json:"end_punctuation"`
	ItalicJournal  bool   `json:"italic_journal"`
	BoldVolume     bool   `json:"bold_volume"`
	IncludeIssue   bool   `json:"include_issue"`
	PagesFormat    string `json:"pages_format"`
	YearFormat     string `json:"year_format"`
	IncludeDOI     bool   `json:"include_doi"`
}

// ImportForm builds a style from a form payload and runs it through the
// standard validator, so a form missing its sort mode or template
// placeholders fails with the same errors as a JSON import.
func ImportForm(form FormPayload) (*style.Style, error) {
	s := style.Style{
		ID:          form.ID,
		Name:        form.Name,
		DisplayName: form.DisplayName,
		Sort:        style.SortConfig{Mode: form.SortMode},
		AuthorRules: author.Rules{
			EtAlAfter:      form.EtAlAfter,
			MaxAuthors:     form.MaxAuthors,
			Delimiter:      form.Delimiter,
			FinalDelimiter: form.FinalDelimiter,
			Format:         form.NameFormat,
		},
		Title: style.TitleRules{
			Include:        form.IncludeTitle,
			SentenceCase:   form.SentenceCase,
			EndPunctuation: form.EndPunctuation,
		},
		Journal: style.JournalRules{UseVenue: true, UseItalic: form.ItalicJournal},
		Volume: style.VolumeRules{
			Include:      true,
			UseBold:      form.BoldVolume,
			IncludeIssue: form.IncludeIssue,
			Format:       form.PagesFormat,
		},
		Year:     style.YearRules{Format: form.YearFormat},
		DOI:      style.DOIRules{Include: form.IncludeDOI},
		Template: form.Template,
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding style form: %w", err)
	}
	return ImportJSON(data)
}
