package main

import (
	"fmt"

	"github.com/ronginooth/citepress/internal/export"
	"github.com/ronginooth/citepress/internal/numbering"
	"github.com/ronginooth/citepress/internal/paper"
	"github.com/spf13/cobra"
)

var (
	exportBibtex bool
	exportStyle  string
)

func init() {
	exportCmd.Flags().BoolVar(&exportBibtex, "bibtex", false, "Export to BibTeX format")
	exportCmd.Flags().StringVar(&exportStyle, "style", "", "Citation style ID (controls entry order)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <document.json>",
	Short: "Export a document's cited papers to BibTeX",
	Long: `Export the papers cited by a document to BibTeX format.

Citations are deduplicated by paper and emitted in bibliography order for
the document's style (or the --style override).

Examples:
  cite export manuscript.json --bibtex
  cite export manuscript.json --bibtex --style apa > refs.bib`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	if !exportBibtex {
		exitWithError(ExitError, "--bibtex flag is required")
	}

	req := mustLoadDocument(args[0])
	req.StyleID = resolveStyleID(exportStyle, req.StyleID)

	registry, closeStore := newRegistry()
	defer closeStore()

	st := registry.Resolve(req.StyleID)
	citations := attachDocumentPapers(req.Citations, req.Papers)
	entries, _ := numbering.Resolve(citations, req.Paragraphs, numbering.ModeForStyle(st))

	// Note: BibTeX is always text output, never JSON
	fmt.Print(export.ToBibTeXList(entries))
	return nil
}

// attachDocumentPapers resolves each citation's paper record from the
// document's paper map when the citation carries none inline.
func attachDocumentPapers(citations []paper.Citation, papers map[string]*paper.Paper) []paper.Citation {
	if len(papers) == 0 {
		return citations
	}
	out := make([]paper.Citation, len(citations))
	copy(out, citations)
	for i := range out {
		if out[i].Paper == nil {
			out[i].Paper = papers[out[i].PaperID]
		}
	}
	return out
}
