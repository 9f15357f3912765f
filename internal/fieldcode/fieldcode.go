// Package fieldcode generates, parses and edits the inline citation
// markers embedded in document prose.
//
// The marker grammar is:
//
//	[cite:<citationID>:<paperID>]
//	[cite:<citationID>:<paperID>](<displayText>)
//
// Field codes are derived, not stored: they exist only as substrings of
// paragraph text and are recomputed by parsing on every access. Offsets
// are byte offsets into the parsed string.
package fieldcode

import (
	"fmt"
	"regexp"
	"strings"
)

// markerRe matches one field code marker with an optional display text
// suffix. IDs are restricted to the characters the editor generates.
var markerRe = regexp.MustCompile(`\[cite:([A-Za-z0-9_-]+):([A-Za-z0-9_-]*)\](?:\(([^()]*)\))?`)

// FieldCode is one parsed marker occurrence.
type FieldCode struct {
	CitationID  string `json:"citation_id"`
	PaperID     string `json:"paper_id"`
	DisplayText string `json:"display_text,omitempty"`

	// Parse-time position data, meaningless outside the text the code
	// was parsed from.
	Raw   string `json:"raw"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Generate returns the marker text for a citation.
func Generate(citationID, paperID string) string {
	return fmt.Sprintf("[cite:%s:%s]", citationID, paperID)
}

// GenerateWithDisplay returns the marker text with a display text
// override. The display suffix grammar cannot carry parentheses, so any
// in displayText are stripped to keep generated markers parseable.
func GenerateWithDisplay(citationID, paperID, displayText string) string {
	displayText = strings.NewReplacer("(", "", ")", "").Replace(displayText)
	return fmt.Sprintf("[cite:%s:%s](%s)", citationID, paperID, displayText)
}

// Parse scans text and returns every marker in left-to-right order.
func Parse(text string) []FieldCode {
	matches := markerRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	codes := make([]FieldCode, 0, len(matches))
	for _, m := range matches {
		fc := FieldCode{
			CitationID: text[m[2]:m[3]],
			PaperID:    text[m[4]:m[5]],
			Raw:        text[m[0]:m[1]],
			Start:      m[0],
			End:        m[1],
		}
		if m[6] >= 0 {
			fc.DisplayText = text[m[6]:m[7]]
		}
		codes = append(codes, fc)
	}
	return codes
}

// FindByCitationID returns the first marker with the given citation id.
func FindByCitationID(text, citationID string) (FieldCode, bool) {
	for _, fc := range Parse(text) {
		if fc.CitationID == citationID {
			return fc, true
		}
	}
	return FieldCode{}, false
}

// FindByPaperID returns all markers referencing the given paper.
func FindByPaperID(text, paperID string) []FieldCode {
	var found []FieldCode
	for _, fc := range Parse(text) {
		if fc.PaperID == paperID {
			found = append(found, fc)
		}
	}
	return found
}

// Insert places a marker at the given byte offset and returns the new
// text. Offsets outside the text are clamped to its bounds.
func Insert(text string, offset int, marker string) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return text[:offset] + marker + text[offset:]
}

// Remove deletes the first marker with the given citation id and returns
// the new text. The marker is located by parsing, then spliced out, so
// display text that happens to resemble marker syntax elsewhere in the
// string is never touched. Returns the text unchanged when no marker
// matches.
func Remove(text, citationID string) string {
	fc, ok := FindByCitationID(text, citationID)
	if !ok {
		return text
	}
	return text[:fc.Start] + text[fc.End:]
}

// UpdateDisplay replaces the display text of the first marker with the
// given citation id, adding one if the marker had none. An empty
// displayText strips the suffix entirely.
func UpdateDisplay(text, citationID, displayText string) string {
	fc, ok := FindByCitationID(text, citationID)
	if !ok {
		return text
	}
	replacement := Generate(fc.CitationID, fc.PaperID)
	if displayText != "" {
		replacement = GenerateWithDisplay(fc.CitationID, fc.PaperID, displayText)
	}
	return text[:fc.Start] + replacement + text[fc.End:]
}

// Validate parses text and returns the markers whose citation id is not in
// the known set. These orphans are reported for the caller to surface as a
// warning; they are not an error.
func Validate(text string, knownIDs map[string]bool) []FieldCode {
	var orphans []FieldCode
	for _, fc := range Parse(text) {
		if !knownIDs[fc.CitationID] {
			orphans = append(orphans, fc)
		}
	}
	return orphans
}

// Strip removes every recognized marker from text, leaving the prose.
func Strip(text string) string {
	codes := Parse(text)
	if len(codes) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, fc := range codes {
		b.WriteString(text[prev:fc.Start])
		prev = fc.End
	}
	b.WriteString(text[prev:])
	return b.String()
}
