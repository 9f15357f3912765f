package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ronginooth/citepress/internal/author"
	"github.com/ronginooth/citepress/internal/style"
)

// Title truncation length for style listings.
const ListTitleMaxLen = 50

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
	Path   string `json:"path,omitempty"`
}

// StyleSummary is one style in listing output.
type StyleSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Sort        string `json:"sort"`
	Source      string `json:"source"` // "system" or "user"
}

// summarizeStyles converts styles to listing rows.
func summarizeStyles(styles []style.Style, source string) []StyleSummary {
	out := make([]StyleSummary, len(styles))
	for i, s := range styles {
		out[i] = StyleSummary{
			ID:          s.ID,
			DisplayName: truncateString(s.DisplayName, ListTitleMaxLen),
			Sort:        s.Sort.Mode,
			Source:      source,
		}
	}
	return out
}

// printStylesHuman prints style listing rows in human-readable format.
func printStylesHuman(styles []StyleSummary) {
	for _, s := range styles {
		fmt.Printf("%-12s %-10s %-14s %s\n", s.ID, s.Source, s.Sort, s.DisplayName)
	}
}

// printStyleHuman prints one full style definition in human-readable format.
func printStyleHuman(s style.Style) {
	fmt.Printf("%s\n", s.ID)
	fmt.Printf("  Name: %s\n", s.DisplayName)
	fmt.Printf("  Sort: %s\n", s.Sort.Mode)
	fmt.Printf("  Authors: %s\n", describeAuthorRules(s.AuthorRules))
	fmt.Printf("  Template: %s\n", s.Template)
}

// describeAuthorRules summarizes author rules on one line.
func describeAuthorRules(r author.Rules) string {
	var parts []string
	if r.Format != "" {
		parts = append(parts, r.Format)
	}
	if r.EtAlAfter > 0 {
		parts = append(parts, fmt.Sprintf("et al. after %d", r.EtAlAfter))
	}
	if len(parts) == 0 {
		return "full list"
	}
	return strings.Join(parts, ", ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
