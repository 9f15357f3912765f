package main

import (
	"fmt"
	"os"

	"github.com/ronginooth/citepress/internal/fieldcode"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <document.json>",
	Short: "Check a document for orphaned field codes",
	Long: `Check a document's field code markers against its citation records.

Markers whose citation ID matches no record are orphans: render leaves
them in the text untouched, so they should be repaired or removed.

Exits 0 when the document is clean, 3 when orphans are found.

Examples:
  cite check manuscript.json
  cite check manuscript.json --human`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// CheckResponse reports a document's field code consistency.
type CheckResponse struct {
	Paragraphs int            `json:"paragraphs"`
	Markers    int            `json:"markers"`
	Orphans    []OrphanedCode `json:"orphans,omitempty"`
}

// OrphanedCode locates one unmatched marker.
type OrphanedCode struct {
	ParagraphID string `json:"paragraph_id"`
	CitationID  string `json:"citation_id"`
	Raw         string `json:"raw"`
	Start       int    `json:"start"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	req := mustLoadDocument(args[0])

	known := make(map[string]bool, len(req.Citations))
	for _, c := range req.Citations {
		known[c.ID] = true
	}

	resp := CheckResponse{Paragraphs: len(req.Paragraphs)}
	for _, para := range req.Paragraphs {
		resp.Markers += len(fieldcode.Parse(para.Content))
		for _, fc := range fieldcode.Validate(para.Content, known) {
			resp.Orphans = append(resp.Orphans, OrphanedCode{
				ParagraphID: para.ID,
				CitationID:  fc.CitationID,
				Raw:         fc.Raw,
				Start:       fc.Start,
			})
		}
	}

	if humanOutput {
		outputHuman("%d paragraph(s), %d marker(s), %d orphan(s)\n",
			resp.Paragraphs, resp.Markers, len(resp.Orphans))
		for _, o := range resp.Orphans {
			fmt.Printf("  %s at offset %d: %s\n", o.ParagraphID, o.Start, o.Raw)
		}
	} else {
		if err := outputJSON(resp); err != nil {
			return err
		}
	}

	if len(resp.Orphans) > 0 {
		os.Exit(ExitDataError)
	}
	return nil
}
