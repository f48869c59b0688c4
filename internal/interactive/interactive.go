// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interactive implements the menu-driven terminal session:
// single conversion, directory batch, and document info, with
// overwrite prompts during batches.
// Implements: prd005-cli-shell (R2);
//
//	docs/ARCHITECTURE § CLI Shell.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfbridge/internal/convert"
	"github.com/pdiddy/pdfbridge/internal/pagerange"
	"github.com/pdiddy/pdfbridge/pkg/types"
)

// InfoSource reads document properties for the info menu action.
type InfoSource interface {
	Info(path string) (*types.DocumentInfo, error)
}

// Session drives the interactive menu over a line-based reader and a
// writer, so tests can script it.
type Session struct {
	conv *convert.Converter
	info InfoSource
	in   *bufio.Reader
	out  io.Writer
}

// New builds a Session reading from in and writing to out.
func New(conv *convert.Converter, info InfoSource, in io.Reader, out io.Writer) *Session {
	return &Session{conv: conv, info: info, in: bufio.NewReader(in), out: out}
}

// Run drives the menu loop until the user quits or input ends.
func (s *Session) Run() {
	fmt.Fprintln(s.out, strings.Repeat("=", 50))
	fmt.Fprintln(s.out, "PDF to DOCX converter - interactive mode")
	fmt.Fprintln(s.out, strings.Repeat("=", 50))

	for {
		fmt.Fprintln(s.out, "\nChoose an action:")
		fmt.Fprintln(s.out, "1. Convert a single PDF")
		fmt.Fprintln(s.out, "2. Convert a directory of PDFs")
		fmt.Fprintln(s.out, "3. Show PDF info")
		fmt.Fprintln(s.out, "4. Quit")

		choice, ok := s.prompt("\nEnter choice (1-4): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.singleConvert()
		case "2":
			s.batchConvert()
		case "3":
			s.showInfo()
		case "4":
			fmt.Fprintln(s.out, "bye")
			return
		default:
			fmt.Fprintln(s.out, "invalid choice, try again")
		}
	}
}

// prompt prints a message and reads one trimmed line. ok is false once
// input has ended.
func (s *Session) prompt(msg string) (string, bool) {
	fmt.Fprint(s.out, msg)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// promptPath additionally strips surrounding double quotes, which
// shells and file managers add when pasting paths. Single quotes stay:
// they are legal filename characters.
func (s *Session) promptPath(msg string) (string, bool) {
	line, ok := s.prompt(msg)
	return strings.Trim(line, `"`), ok
}

func (s *Session) singleConvert() {
	src, ok := s.promptPath("PDF file path: ")
	if !ok {
		return
	}
	if _, err := os.Stat(src); err != nil {
		fmt.Fprintf(s.out, "file does not exist: %s\n", src)
		return
	}

	defaultDst := strings.TrimSuffix(src, filepath.Ext(src)) + ".docx"
	dst, ok := s.promptPath(fmt.Sprintf("output DOCX path (default: %s): ", defaultDst))
	if !ok {
		return
	}
	if dst == "" {
		dst = defaultDst
	}

	rangeText, ok := s.prompt("page range (e.g. 1-5 or 3, empty for all pages): ")
	if !ok {
		return
	}
	pages, valid := pagerange.Parse(rangeText)
	if !valid {
		fmt.Fprintln(s.out, "page format invalid, converting all pages")
	}

	if s.conv.ConvertFile(src, dst, pages) {
		fmt.Fprintf(s.out, "conversion complete: %s\n", dst)
	} else {
		fmt.Fprintln(s.out, "conversion failed")
	}
}

func (s *Session) batchConvert() {
	inputDir, ok := s.promptPath("directory containing PDFs: ")
	if !ok {
		return
	}
	if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		fmt.Fprintf(s.out, "directory does not exist: %s\n", inputDir)
		return
	}

	outputDir, ok := s.promptPath(fmt.Sprintf("output directory (default: %s_converted): ", inputDir))
	if !ok {
		return
	}

	result := s.conv.BatchDir(inputDir, outputDir, "", s.promptDecision, s.out)
	fmt.Fprintf(s.out, "\nbatch complete: %d/%d files successful\n", result.Converted, result.Total)
}

const overwritePrompt = "file %s already exists, overwrite? (y/n/a=overwrite all/s=skip all): "

// promptDecision asks what to do with one existing output file. The
// answer "a" overwrites everything without further prompts; "s" stops
// the batch. Input ending mid-batch stops it too.
func (s *Session) promptDecision(dst string) convert.Decision {
	answer, ok := s.prompt(fmt.Sprintf(overwritePrompt, filepath.Base(dst)))
	if !ok {
		return convert.SkipAll
	}
	return decisionFor(answer)
}

// decisionFor maps one prompt answer to a batch decision. Only explicit
// n/s answers hold files back; anything else overwrites.
func decisionFor(answer string) convert.Decision {
	switch strings.ToLower(answer) {
	case "n", "no":
		return convert.Skip
	case "s", "skip":
		return convert.SkipAll
	case "a", "all":
		return convert.OverwriteAll
	default:
		return convert.Overwrite
	}
}

// Decider returns the overwrite prompt as a standalone DecideFunc for
// callers outside the menu session, reading answers from in and asking
// on out. Exhausted input skips all remaining files.
func Decider(in io.Reader, out io.Writer) convert.DecideFunc {
	r := bufio.NewReader(in)
	return func(dst string) convert.Decision {
		fmt.Fprintf(out, overwritePrompt, filepath.Base(dst))
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return convert.SkipAll
		}
		return decisionFor(strings.TrimSpace(line))
	}
}

func (s *Session) showInfo() {
	path, ok := s.promptPath("PDF file path: ")
	if !ok {
		return
	}

	info, err := s.info.Info(path)
	if err != nil {
		fmt.Fprintln(s.out, "failed to read PDF info")
		return
	}

	fmt.Fprintln(s.out, "\nPDF file info:")
	fmt.Fprintf(s.out, "  pages:     %d\n", info.Pages)
	fmt.Fprintf(s.out, "  title:     %s\n", orUnset(info.Title))
	fmt.Fprintf(s.out, "  author:    %s\n", orUnset(info.Author))
	fmt.Fprintf(s.out, "  subject:   %s\n", orUnset(info.Subject))
	fmt.Fprintf(s.out, "  creator:   %s\n", orUnset(info.Creator))
	fmt.Fprintf(s.out, "  file size: %s\n", info.FileSize)
}

func orUnset(v string) string {
	if v == "" {
		return "not set"
	}
	return v
}
