package main

import (
	"github.com/ronginooth/citepress/internal/style"
	"github.com/spf13/cobra"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Manage citation styles",
	Long: `Commands for listing, inspecting and importing citation styles.

Styles resolve through a chain: user-imported styles first, then the
bundled system catalog, then a plain fallback. Rendering never fails on
an unknown style ID; it falls back instead.`,
}

func init() {
	rootCmd.AddCommand(styleCmd)
	styleCmd.AddCommand(styleListCmd)
	styleCmd.AddCommand(styleShowCmd)
	styleCmd.AddCommand(styleDeleteCmd)
}

var styleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available citation styles",
	RunE:  runStyleList,
}

func runStyleList(cmd *cobra.Command, args []string) error {
	rows := summarizeStyles(style.SystemStyles(), "system")

	// User styles are listed after the catalog; a missing database just
	// means none have been imported yet.
	if db, cleanup, ok := openUserStoreIfPresent(); ok {
		defer cleanup()
		userStyles, err := db.List()
		if err != nil {
			exitWithError(ExitError, "listing user styles: %v", err)
		}
		rows = append(rows, summarizeStyles(userStyles, "user")...)
	}

	if humanOutput {
		printStylesHuman(rows)
		return nil
	}
	return outputJSON(rows)
}

var styleShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a style's full definition",
	Args:  cobra.ExactArgs(1),
	RunE:  runStyleShow,
}

func runStyleShow(cmd *cobra.Command, args []string) error {
	registry, closeStore := newRegistry()
	defer closeStore()

	s := registry.Resolve(args[0])
	if s.ID != args[0] {
		exitWithError(ExitError, "unknown style: %s (falls back to %q when rendering)", args[0], s.ID)
	}

	if humanOutput {
		printStyleHuman(s)
		return nil
	}
	return outputJSON(s)
}

var styleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an imported user style",
	Args:  cobra.ExactArgs(1),
	RunE:  runStyleDelete,
}

func runStyleDelete(cmd *cobra.Command, args []string) error {
	db := mustOpenUserStore()
	defer db.Close()

	if err := db.Delete(args[0]); err != nil {
		exitWithError(ExitError, "deleting style: %v", err)
	}

	if humanOutput {
		outputHuman("Deleted style %s\n", args[0])
		return nil
	}
	return outputJSON(StatusResponse{Status: "deleted", ID: args[0]})
}
