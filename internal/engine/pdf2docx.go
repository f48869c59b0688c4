// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pdfbridge/internal/pagerange"
)

// defaultBinary is the pdf2docx executable looked up on PATH.
const defaultBinary = "pdf2docx"

// CLI runs the pdf2docx command-line tool installed on the host.
type CLI struct {
	bin  string
	exec executor
}

// NewCLI creates the PATH-binary backend. An empty binary name selects
// the default "pdf2docx".
func NewCLI(binary string) *CLI {
	return newCLI(binary, defaultExec)
}

func newCLI(binary string, exec executor) *CLI {
	if binary == "" {
		binary = defaultBinary
	}
	return &CLI{bin: binary, exec: exec}
}

func (c *CLI) Name() string { return c.bin }

// Check confirms the tool exists on PATH. The diagnostic names the
// install command because the tool is never installed on the caller's
// behalf.
func (c *CLI) Check() error {
	if _, err := c.exec.LookPath(c.bin); err != nil {
		return fmt.Errorf("%s not found on PATH (install with: pip install pdf2docx): %w", c.bin, err)
	}
	return nil
}

func (c *CLI) Convert(src, dst string, pages pagerange.Range) error {
	args := append([]string{"convert", src, dst}, pageArgs(pages)...)
	out, err := c.exec.RunOutput(c.bin, args...)
	if err != nil {
		return fmt.Errorf("%s convert failed: %w: %s", c.bin, err, strings.TrimSpace(string(out)))
	}
	return nil
}
