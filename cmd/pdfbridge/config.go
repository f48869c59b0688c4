package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfbridge/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the pdfbridge configuration file",
}

// --- init subcommand ---

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default pdfbridge.yaml in the current directory",
	Long: `Init scaffolds pdfbridge.yaml with every setting at its default value.
The file is optional: missing keys fall back to built-in defaults, and
PDFBRIDGE_* environment variables override file values per run.`,
	RunE: runConfigInit,
}

const configHeader = `# pdfbridge configuration.
#
# Every key is optional; missing keys fall back to built-in defaults.
# Environment variables override file values per run, for example
# PDFBRIDGE_SERVER_PORT=8080 or PDFBRIDGE_ENGINE_BACKEND=container.
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := "pdfbridge.yaml"
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
