// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine wraps the external pdf2docx conversion tool behind a
// stable interface. All document parsing, layout reconstruction, and
// format translation happens inside the tool; this package only builds
// invocations and reports failures.
// Implements: prd001-conversion R5 (engine backends);
//
//	docs/ARCHITECTURE § Conversion.
package engine

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/pdiddy/pdfbridge/internal/pagerange"
	"github.com/pdiddy/pdfbridge/pkg/types"
)

// Engine performs PDF-to-DOCX translation. Backends differ only in how
// the pdf2docx tool is reached: a binary on PATH or a container image.
type Engine interface {
	// Name identifies the backend for logs and diagnostics.
	Name() string

	// Check verifies the external tool is usable. It is the startup
	// precondition: callers fail fast on a clear diagnostic instead of
	// discovering a missing tool mid-request.
	Check() error

	// Convert translates the PDF at src into a DOCX at dst, restricted
	// to the given page range. Nothing is retried; the caller decides
	// what a failure means.
	Convert(src, dst string, pages pagerange.Range) error
}

// New builds the backend selected by cfg. The returned engine has not
// been Check'ed yet.
func New(cfg types.EngineConfig) (Engine, error) {
	switch cfg.Backend {
	case types.BackendPdf2docx, "":
		return NewCLI(cfg.Binary), nil
	case types.BackendContainer:
		return NewContainer(cfg.Image)
	default:
		return nil, fmt.Errorf("unknown engine backend %q: use pdf2docx or container", cfg.Backend)
	}
}

// pageArgs renders a page selection as pdf2docx CLI flags. The
// zero-based start and one-based exclusive end pass through
// unmodified: the tool shares the mixed indexing convention.
func pageArgs(pages pagerange.Range) []string {
	if pages.Whole() {
		return nil
	}
	args := []string{"--start", strconv.Itoa(pages.Start)}
	if pages.Bounded {
		args = append(args, "--end", strconv.Itoa(pages.End))
	}
	return args
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunOutput(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

var defaultExec = &osExecutor{}
