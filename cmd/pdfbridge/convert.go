package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfbridge/internal/logging"
	"github.com/pdiddy/pdfbridge/internal/pagerange"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.pdf> [output.docx]",
	Short: "Convert a single PDF to DOCX",
	Long: `Convert translates one PDF into a DOCX document. The output path
defaults to the source path with a .docx extension. A page range such
as "1-5" or "3" restricts conversion; text that does not parse as a
range converts the whole document.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	rangeText, _ := cmd.Flags().GetString("range")

	cfg := loadConfig()
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	conv, err := newConverter(cfg, log)
	if err != nil {
		return err
	}

	src := args[0]
	dst := docxSibling(src)
	if len(args) > 1 {
		dst = args[1]
	}

	pages, recognized := pagerange.Parse(rangeText)
	if !recognized {
		fmt.Fprintf(os.Stderr, "page range %q not understood, converting all pages\n", rangeText)
	}

	if !conv.ConvertFile(src, dst, pages) {
		return fmt.Errorf("conversion failed: %s", src)
	}
	fmt.Printf("converted: %s\n", dst)
	return nil
}

func init() {
	convertCmd.Flags().String("range", "", `page selection, e.g. "1-5" or "3" (default: all pages)`)

	rootCmd.AddCommand(convertCmd)
}
