// Package render produces formatted bibliography entries and in-text
// citation forms from paper data and a citation style.
package render

// Format selects the emphasis markup flavor of rendered output.
type Format string

const (
	Plain    Format = "plain"
	Markdown Format = "markdown"
	HTML     Format = "html"
	LaTeX    Format = "latex"
)

// Italic wraps s in the format's emphasis markup.
func (f Format) Italic(s string) string {
	if s == "" {
		return ""
	}
	switch f {
	case Markdown:
		return "*" + s + "*"
	case HTML:
		return "<em>" + s + "</em>"
	case LaTeX:
		return `\textit{` + s + `}`
	default:
		return s
	}
}

// Bold wraps s in the format's bold markup.
func (f Format) Bold(s string) string {
	if s == "" {
		return ""
	}
	switch f {
	case Markdown:
		return "**" + s + "**"
	case HTML:
		return "<strong>" + s + "</strong>"
	case LaTeX:
		return `\textbf{` + s + `}`
	default:
		return s
	}
}
