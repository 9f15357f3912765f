package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ronginooth/citepress/internal/config"
	"github.com/ronginooth/citepress/internal/engine"
	"github.com/ronginooth/citepress/internal/render"
	"github.com/spf13/cobra"
)

var (
	renderStyle  string
	renderFormat string
	renderInline string
)

func init() {
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "Citation style ID (overrides the document's style)")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "Output markup: plain, markdown, html, latex")
	renderCmd.Flags().StringVar(&renderInline, "inline", "", "In-text citation form: numeric, author-date, author-year")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <document.json>",
	Short: "Render a document's citations and bibliography",
	Long: `Render a document: rewrite field code markers to in-text citations and
assemble the numbered or alphabetical bibliography.

The document is a JSON file with paragraphs, citations and paper records.
Use "-" to read the document from stdin.

Examples:
  cite render manuscript.json
  cite render manuscript.json --style nature --format markdown
  cite render manuscript.json --style apa --human`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	req := mustLoadDocument(args[0])

	req.StyleID = resolveStyleID(renderStyle, req.StyleID)
	if renderFormat != "" {
		req.Format = mustParseFormat(renderFormat)
	} else if req.Format == "" && config.GetOutputFormat() != "" {
		req.Format = mustParseFormat(config.GetOutputFormat())
	}
	if renderInline != "" {
		req.Inline = &render.InlineConfig{Format: mustParseInline(renderInline)}
	}

	registry, closeStore := newRegistry()
	defer closeStore()

	result := engine.New(registry).Render(req)

	if humanOutput {
		printResultHuman(result)
		return nil
	}
	return outputJSON(result)
}

// mustLoadDocument reads and decodes a document render request from a file
// path or stdin ("-"). Exits on error.
func mustLoadDocument(path string) engine.Request {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		exitWithError(ExitError, "reading document: %v", err)
	}

	var req engine.Request
	if err := json.Unmarshal(data, &req); err != nil {
		exitWithError(ExitDataError, "parsing document: %v", err)
	}
	return req
}

// mustParseFormat validates an output format value. Exits on error.
func mustParseFormat(s string) render.Format {
	switch render.Format(s) {
	case render.Plain, render.Markdown, render.HTML, render.LaTeX:
		return render.Format(s)
	}
	exitWithError(ExitError, "invalid format: %s (valid: plain, markdown, html, latex)", s)
	return ""
}

// mustParseInline validates an in-text citation form value. Exits on error.
func mustParseInline(s string) string {
	switch s {
	case render.InlineNumeric, render.InlineAuthorDate, render.InlineAuthorYear:
		return s
	}
	exitWithError(ExitError, "invalid inline form: %s (valid: numeric, author-date, author-year)", s)
	return ""
}

func printResultHuman(result engine.Result) {
	for _, p := range result.Paragraphs {
		fmt.Println(p.Content)
		fmt.Println()
	}
	if len(result.Bibliography) > 0 {
		fmt.Println("References")
		fmt.Println()
		for _, entry := range result.Bibliography {
			fmt.Println(entry)
		}
	}
	if len(result.Orphans) > 0 {
		fmt.Fprintf(os.Stderr, "\nwarning: %d orphaned field code(s)\n", len(result.Orphans))
	}
}
