// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates PDF-to-DOCX conversion through a
// pluggable engine backend.
// Implements: prd001-conversion (R1-R3);
//
//	docs/ARCHITECTURE § Conversion.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdfbridge/internal/engine"
	"github.com/pdiddy/pdfbridge/internal/pagerange"
)

// Converter runs single and batch conversions through an engine,
// logging outcomes and reporting progress to caller-supplied writers.
type Converter struct {
	engine engine.Engine
	log    *logrus.Logger
}

// New builds a Converter on the given backend.
func New(eng engine.Engine, log *logrus.Logger) *Converter {
	return &Converter{engine: eng, log: log}
}

// Engine returns the backend this converter runs.
func (c *Converter) Engine() engine.Engine { return c.engine }

// ConvertFile converts a single PDF to DOCX, restricted to the given
// page selection. It reports success only when the output file exists
// afterward; failure details go to the log, never to the caller.
func (c *Converter) ConvertFile(src, dst string, pages pagerange.Range) bool {
	if _, err := os.Stat(src); err != nil {
		c.log.WithError(err).Errorf("source PDF missing: %s", src)
		return false
	}

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.log.WithError(err).Errorf("creating output directory %s", dir)
			return false
		}
	}

	c.log.Infof("converting %s (%s)", filepath.Base(src), pages)
	start := time.Now()

	if err := c.engine.Convert(src, dst, pages); err != nil {
		c.log.WithError(err).Errorf("conversion failed: %s", filepath.Base(src))
		return false
	}

	// Some engines exit zero without producing output on malformed
	// input, so existence of the output is the success condition.
	info, err := os.Stat(dst)
	if err != nil {
		c.log.Errorf("conversion produced no output: %s", dst)
		return false
	}

	c.log.WithFields(logrus.Fields{
		"output":  filepath.Base(dst),
		"size_mb": fmt.Sprintf("%.2f", float64(info.Size())/(1024*1024)),
		"elapsed": fmt.Sprintf("%.2fs", time.Since(start).Seconds()),
	}).Info("converted")
	return true
}

// DocxPath returns the output path for a PDF in outDir: the source
// base name with a .docx extension.
func DocxPath(src, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(outDir, base+".docx")
}
