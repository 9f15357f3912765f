// Package main provides the cite CLI entry point.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ronginooth/citepress/internal/config"
	"github.com/ronginooth/citepress/internal/storage"
	"github.com/ronginooth/citepress/internal/style"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cite",
	Short: "Citation rendering and numbering CLI",
	Long: `cite renders citations and bibliographies from documents that carry
inline field code markers.

Core features:
  - Field code parsing and in-text citation rewriting
  - Citation deduplication and bibliography numbering
  - Bundled citation styles (Nature, Science, Vancouver, PLOS, APA, Chicago)
  - User style import from JSON definitions, files or URLs
  - BibTeX export of cited papers

Documents are supplied as JSON. All commands output JSON by default for
editor and agent integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustOpenUserStore opens the user style database, creating the data
// directory on first use. Exits on error.
func mustOpenUserStore() *storage.DB {
	path := config.StylesDBPath()
	if path == "" {
		exitWithError(ExitConfigError, "cannot determine data directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		exitWithError(ExitError, "creating data directory: %v", err)
	}
	db, err := storage.Open(path)
	if err != nil {
		exitWithError(ExitError, "opening style database: %v", err)
	}
	return db
}

// openUserStoreIfPresent opens the user style database only when one
// already exists on disk. ok is false when there is nothing to open.
func openUserStoreIfPresent() (*storage.DB, func(), bool) {
	path := config.StylesDBPath()
	if path == "" {
		return nil, nil, false
	}
	if _, err := os.Stat(path); err != nil {
		return nil, nil, false
	}
	db, err := storage.Open(path)
	if err != nil {
		exitWithError(ExitError, "opening style database: %v", err)
	}
	return db, func() { db.Close() }, true
}

// newRegistry builds the style registry, attaching the user store when a
// style database already exists. Resolution degrades to the bundled
// catalog when the store cannot be opened, so rendering still works.
// The returned cleanup closes the store and is always safe to call.
func newRegistry() (*style.Registry, func()) {
	path := config.StylesDBPath()
	if path == "" {
		return style.NewRegistry(nil), func() {}
	}
	if _, err := os.Stat(path); err != nil {
		return style.NewRegistry(nil), func() {}
	}
	db, err := storage.Open(path)
	if err != nil {
		return style.NewRegistry(nil), func() {}
	}
	return style.NewRegistry(db), func() { db.Close() }
}

// resolveStyleID applies the precedence chain for the style to render
// with: explicit flag, document value, configured default.
func resolveStyleID(flagValue, documentValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if documentValue != "" {
		return documentValue
	}
	return config.GetDefaultStyle()
}
