package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfbridge/internal/inspect"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.pdf>",
	Short: "Show PDF metadata (page count, title, author)",
	Long: `Info prints the document metadata the conversion service exposes: page
count, title, author, subject, creator, and file size. Reading happens
in-process; the external conversion tool is not involved.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	insp, err := inspect.New()
	if err != nil {
		return err
	}
	defer insp.Close()

	info, err := insp.Info(args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("pages:     %d\n", info.Pages)
	fmt.Printf("title:     %s\n", orUnset(info.Title))
	fmt.Printf("author:    %s\n", orUnset(info.Author))
	fmt.Printf("subject:   %s\n", orUnset(info.Subject))
	fmt.Printf("creator:   %s\n", orUnset(info.Creator))
	fmt.Printf("file size: %s\n", info.FileSize)
	return nil
}

func orUnset(v string) string {
	if v == "" {
		return "not set"
	}
	return v
}

func init() {
	infoCmd.Flags().Bool("json", false, "output metadata as JSON")

	rootCmd.AddCommand(infoCmd)
}
