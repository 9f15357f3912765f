// Package author provides author name formatting for citation styles.
//
// Names are assumed surname-first: for an entry without a comma the first
// whitespace token is treated as the surname. This matches the simple
// heuristic used across the rest of the engine and is intentionally not a
// full internationalized name parser.
package author

import "strings"

// Name format values for Rules.Format.
const (
	FormatLastInitial = "LastName FirstInitial" // "Surname, Initials"
	FormatLastFirst   = "LastName FirstName"    // name kept as supplied
)

// UnknownAuthor is the placeholder used when a paper has no author data.
// Rendering degrades to this literal rather than failing.
const UnknownAuthor = "Unknown Author"

// Rules controls how an author list is rendered for a style.
type Rules struct {
	MaxAuthors     int    `json:"maxAuthors,omitempty"` // display cap used by in-text configs
	EtAlAfter      int    `json:"etAlAfter"`            // truncate after this many authors, 0 = never
	Delimiter      string `json:"delimiter"`            // between items in lists of 3+
	FinalDelimiter string `json:"finalDelimiter"`       // before the last item
	Format         string `json:"format"`               // FormatLastInitial or FormatLastFirst
}

// Format renders an author list according to the given rules. The list is
// truncated to rules.EtAlAfter names (with an " et al." suffix) when the
// threshold is positive and exceeded. An empty list yields UnknownAuthor.
func Format(authors []string, rules Rules) string {
	var kept []string
	for _, a := range authors {
		a = strings.TrimSpace(a)
		if a != "" {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return UnknownAuthor
	}

	etAl := false
	if rules.EtAlAfter > 0 && len(kept) > rules.EtAlAfter {
		kept = kept[:rules.EtAlAfter]
		etAl = true
	}

	formatted := make([]string, len(kept))
	for i, a := range kept {
		formatted[i] = formatName(a, rules.Format)
	}

	joined := join(formatted, rules)
	if etAl {
		joined += " et al."
	}
	return joined
}

// FormatString renders a delimited author string, normalizing it to a list
// first (split on comma/ampersand, trimmed, empties discarded).
func FormatString(s string, rules Rules) string {
	return Format(Normalize(s), rules)
}

// Normalize splits a delimited author string into individual names.
func Normalize(s string) []string {
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

// ExtractLastName returns the surname of a single author entry: the first
// comma-delimited token, or the first whitespace token when no comma is
// present. Used for alphabetical sort keys independent of any truncation
// settings.
func ExtractLastName(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return ""
	}
	if idx := strings.Index(author, ","); idx >= 0 {
		return strings.TrimSpace(author[:idx])
	}
	fields := strings.Fields(author)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// formatName renders one author entry per the requested name format.
func formatName(name, format string) string {
	if format != FormatLastInitial {
		return name
	}

	surname := ExtractLastName(name)
	rest := remainder(name)
	if rest == "" {
		return surname
	}

	tokens := strings.Fields(rest)
	initials := make([]string, len(tokens))
	for i, tok := range tokens {
		initials[i] = initial(tok)
	}
	return surname + ", " + strings.Join(initials, " ")
}

// remainder returns the portion of a name after the surname token.
func remainder(name string) string {
	name = strings.TrimSpace(name)
	if idx := strings.Index(name, ","); idx >= 0 {
		return strings.TrimSpace(name[idx+1:])
	}
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

// initial abbreviates a name token to its initial. Tokens that already
// look like initials ("J", "J.") pass through with a trailing period.
func initial(tok string) string {
	runes := []rune(strings.TrimSuffix(tok, "."))
	if len(runes) == 0 {
		return tok
	}
	if len(runes) == 1 {
		return string(runes) + "."
	}
	return string(runes[0]) + "."
}

// join combines formatted names: a single name stands alone, two names use
// the final delimiter, and longer lists use the item delimiter with the
// final delimiter before the last name.
func join(names []string, rules Rules) string {
	delim := rules.Delimiter
	if delim == "" {
		delim = ", "
	}
	final := rules.FinalDelimiter
	if final == "" {
		final = delim
	}

	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + final + names[1]
	default:
		return strings.Join(names[:len(names)-1], delim) + final + names[len(names)-1]
	}
}
