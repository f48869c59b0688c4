// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Implements: prd001-conversion (R4 batch orchestration);
//
//	docs/ARCHITECTURE § Conversion.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pdiddy/pdfbridge/internal/pagerange"
)

// Decision is the outcome of an overwrite prompt for one existing
// output file.
type Decision int

const (
	Overwrite Decision = iota
	Skip
	OverwriteAll
	SkipAll
)

// DecideFunc resolves what to do when an output file already exists.
// Interactive callers prompt the user; servers pass OverwriteAlways.
type DecideFunc func(dst string) Decision

// OverwriteAlways overwrites every existing output without prompting.
func OverwriteAlways(string) Decision { return Overwrite }

// BatchResult holds the outcome of a batch conversion run. Total
// counts every matched input, including files never attempted after a
// skip-all, so the three counters may sum to less than Total.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	Total     int
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// BatchDir converts every PDF in inputDir matching pattern, writing
// DOCX files to outputDir. An empty outputDir selects inputDir +
// "_converted"; an empty pattern selects "*.pdf". When an output file
// already exists, decide picks the action; SkipAll abandons all
// remaining files. Per-file progress goes to w.
func (c *Converter) BatchDir(inputDir, outputDir, pattern string, decide DecideFunc, w io.Writer) BatchResult {
	var result BatchResult

	if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		c.log.Errorf("input directory missing: %s", inputDir)
		fmt.Fprintf(w, "input directory missing: %s\n", inputDir)
		return result
	}
	if outputDir == "" {
		outputDir = inputDir + "_converted"
	}
	if pattern == "" {
		pattern = "*.pdf"
	}

	files, err := filepath.Glob(filepath.Join(inputDir, pattern))
	if err != nil {
		c.log.WithError(err).Errorf("bad file pattern: %s", pattern)
		fmt.Fprintf(w, "bad file pattern: %s\n", pattern)
		return result
	}
	if len(files) == 0 {
		c.log.Warnf("no files matching %s in %s", pattern, inputDir)
		fmt.Fprintf(w, "no files matching %s in %s\n", pattern, inputDir)
		return result
	}

	result.Total = len(files)
	fmt.Fprintf(w, "found %d files, output directory: %s\n", len(files), outputDir)

	overwriteAll := false
loop:
	for i, src := range files {
		base := filepath.Base(src)
		dst := DocxPath(src, outputDir)
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(files), base)

		if !overwriteAll {
			if _, err := os.Stat(dst); err == nil {
				switch decide(dst) {
				case Skip:
					result.Skipped++
					fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
					continue
				case SkipAll:
					fmt.Fprintln(w, "skipping all remaining files")
					break loop
				case OverwriteAll:
					overwriteAll = true
				}
			}
		}

		if c.ConvertFile(src, dst, pagerange.Range{}) {
			result.Converted++
			fmt.Fprintf(w, "converted: %s\n", filepath.Base(dst))
		} else {
			result.Failed++
			fmt.Fprintf(w, "failed:  %s\n", base)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total)
	return result
}

// Job is one conversion request for RunJobs.
type Job struct {
	Source string
	Dest   string
	Pages  pagerange.Range
}

// RunJobs converts jobs with at most workers running at once, always
// overwriting existing outputs. Jobs complete in no defined order.
func (c *Converter) RunJobs(jobs []Job, workers int) BatchResult {
	result := BatchResult{Total: len(jobs)}
	if len(jobs) == 0 {
		return result
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	if workers == 1 {
		for _, j := range jobs {
			if c.ConvertFile(j.Source, j.Dest, j.Pages) {
				result.Converted++
			} else {
				result.Failed++
			}
		}
		return result
	}

	jobCh := make(chan Job, len(jobs))
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	outcomes := make(chan bool, len(jobs))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				outcomes <- c.ConvertFile(j.Source, j.Dest, j.Pages)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	for ok := range outcomes {
		if ok {
			result.Converted++
		} else {
			result.Failed++
		}
	}
	return result
}
