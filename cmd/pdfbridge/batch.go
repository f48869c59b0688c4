package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfbridge/internal/convert"
	"github.com/pdiddy/pdfbridge/internal/interactive"
	"github.com/pdiddy/pdfbridge/internal/logging"
)

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Convert every PDF in a directory",
	Long: `Batch converts every file matching the pattern (default *.pdf) in a
directory. The output directory defaults to <directory>_converted.
Existing outputs trigger an overwrite prompt unless --overwrite is set.

--workers above 1 converts files in parallel; parallel batches always
overwrite, since a per-file prompt has no meaningful order once
conversions run concurrently.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	pattern, _ := cmd.Flags().GetString("pattern")
	workers, _ := cmd.Flags().GetInt("workers")
	overwrite, _ := cmd.Flags().GetBool("overwrite")

	cfg := loadConfig()
	if pattern == "" {
		pattern = cfg.Convert.Pattern
	}
	if workers == 0 {
		workers = cfg.Convert.Workers
	}

	inputDir := args[0]
	if fi, err := os.Stat(inputDir); err != nil || !fi.IsDir() {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	conv, err := newConverter(cfg, log)
	if err != nil {
		return err
	}

	var result convert.BatchResult
	if workers > 1 {
		result, err = parallelBatch(conv, inputDir, outputDir, pattern, workers)
		if err != nil {
			return err
		}
	} else {
		decide := convert.OverwriteAlways
		if !overwrite {
			decide = interactive.Decider(os.Stdin, os.Stdout)
		}
		result = conv.BatchDir(inputDir, outputDir, pattern, decide, os.Stdout)
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to convert", result.Failed)
	}
	return nil
}

// parallelBatch is the worker-pool variant of the directory batch.
func parallelBatch(conv *convert.Converter, inputDir, outputDir, pattern string, workers int) (convert.BatchResult, error) {
	if outputDir == "" {
		outputDir = inputDir + "_converted"
	}

	matches, err := filepath.Glob(filepath.Join(inputDir, pattern))
	if err != nil {
		return convert.BatchResult{}, fmt.Errorf("bad file pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return convert.BatchResult{}, fmt.Errorf("no files matching %s in %s", pattern, inputDir)
	}

	jobs := make([]convert.Job, 0, len(matches))
	for _, src := range matches {
		jobs = append(jobs, convert.Job{Source: src, Dest: convert.DocxPath(src, outputDir)})
	}

	fmt.Printf("found %d files, output directory: %s\n", len(jobs), outputDir)
	result := conv.RunJobs(jobs, workers)
	fmt.Printf("\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total)
	return result, nil
}

func init() {
	batchCmd.Flags().String("output-dir", "", "output directory (default: <input>_converted)")
	batchCmd.Flags().String("pattern", "", "file glob to convert (default from config, *.pdf)")
	batchCmd.Flags().Int("workers", 0, "parallel conversions (default from config, 1)")
	batchCmd.Flags().Bool("overwrite", false, "overwrite existing outputs without prompting")

	rootCmd.AddCommand(batchCmd)
}
