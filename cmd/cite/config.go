package main

import (
	"fmt"

	"github.com/ronginooth/citepress/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get and set global configuration",
	Long: `Get and set global cite configuration.

Configuration lives in ` + "`~/.config/cite/config.yml`" + ` (XDG_CONFIG_HOME is
respected). Keys:
  default_style   style ID used when a document names none
  output_format   default markup: plain, markdown, html, latex
  data_dir        directory for the user style database
  import_token    bearer token for authenticated style imports`,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the global configuration",
	RunE:  runConfigGet,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	DefaultStyle string `json:"default_style,omitempty"`
	OutputFormat string `json:"output_format,omitempty"`
	DataDir      string `json:"data_dir,omitempty"`
	Path         string `json:"path"`
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	resp := ConfigResponse{
		DefaultStyle: cfg.DefaultStyle,
		OutputFormat: cfg.OutputFormat,
		DataDir:      cfg.DataDir,
		Path:         config.GlobalConfigPath(),
	}

	if humanOutput {
		fmt.Printf("config: %s\n", resp.Path)
		fmt.Printf("  default_style: %s\n", orUnset(resp.DefaultStyle))
		fmt.Printf("  output_format: %s\n", orUnset(resp.OutputFormat))
		fmt.Printf("  data_dir:      %s\n", orUnset(resp.DataDir))
		return nil
	}
	return outputJSON(resp)
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	updated := *cfg
	switch key {
	case "default_style":
		updated.DefaultStyle = value
	case "output_format":
		switch value {
		case "plain", "markdown", "html", "latex":
		default:
			exitWithError(ExitError, "invalid output_format: %s (valid: plain, markdown, html, latex)", value)
		}
		updated.OutputFormat = value
	case "data_dir":
		updated.DataDir = config.ExpandTilde(value)
	case "import_token":
		updated.ImportToken = value
	default:
		exitWithError(ExitError, "unknown config key: %s", key)
	}

	if err := config.SaveGlobalConfig(&updated); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		outputHuman("Set %s = %s\n", key, value)
		return nil
	}
	return outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
