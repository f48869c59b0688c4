package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/pdiddy/pdfbridge/internal/convert"
	"github.com/pdiddy/pdfbridge/internal/pagerange"
)

// fakeEngine implements engine.Engine, writing stub output on success.
type fakeEngine struct {
	fail    bool
	sources []string
}

func (f *fakeEngine) Name() string { return "fake" }
func (f *fakeEngine) Check() error { return nil }

func (f *fakeEngine) Convert(src, dst string, pages pagerange.Range) error {
	f.sources = append(f.sources, src)
	if f.fail {
		return errors.New("tool crashed")
	}
	return os.WriteFile(dst, []byte("docx"), 0o644)
}

func newDispatchConverter(eng *fakeEngine) *convert.Converter {
	log, _ := test.NewNullLogger()
	return convert.New(eng, log)
}

func writePDF(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLegacyDispatchSingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "report.pdf")
	writePDF(t, src)

	var out bytes.Buffer
	err := legacyDispatch(newDispatchConverter(&fakeEngine{}), "*.pdf", []string{src}, strings.NewReader(""), &out)

	if err != nil {
		t.Fatalf("dispatch returned %v, want nil", err)
	}
	want := filepath.Join(dir, "report.docx")
	if !strings.Contains(out.String(), "converted: "+want) {
		t.Errorf("output %q missing completion line", out.String())
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected output at %s: %v", want, err)
	}
}

// A failed conversion is terminal output, not a process failure: the
// legacy surface exits 0 once dispatch begins.
func TestLegacyDispatchSingleFileFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "report.pdf")
	writePDF(t, src)

	var out bytes.Buffer
	err := legacyDispatch(newDispatchConverter(&fakeEngine{fail: true}), "*.pdf", []string{src}, strings.NewReader(""), &out)

	if err != nil {
		t.Fatalf("dispatch returned %v, want nil", err)
	}
	if !strings.Contains(out.String(), "conversion failed: "+src) {
		t.Errorf("output %q missing failure notice", out.String())
	}
}

func TestLegacyDispatchDirectory(t *testing.T) {
	inputDir := filepath.Join(t.TempDir(), "in")
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writePDF(t, filepath.Join(inputDir, "a.pdf"))
	writePDF(t, filepath.Join(inputDir, "b.pdf"))

	var out bytes.Buffer
	err := legacyDispatch(newDispatchConverter(&fakeEngine{}), "*.pdf", []string{inputDir}, strings.NewReader(""), &out)

	if err != nil {
		t.Fatalf("dispatch returned %v, want nil", err)
	}
	if !strings.Contains(out.String(), "Batch summary: 2 converted") {
		t.Errorf("output %q missing batch summary", out.String())
	}
}

func TestLegacyDispatchBatchWord(t *testing.T) {
	// The word forces batch mode even when the directory is missing.
	var out bytes.Buffer
	err := legacyDispatch(newDispatchConverter(&fakeEngine{}), "*.pdf",
		[]string{filepath.Join(t.TempDir(), "nope"), "batch"}, strings.NewReader(""), &out)

	if err != nil {
		t.Fatalf("dispatch returned %v, want nil", err)
	}
	if !strings.Contains(out.String(), "input directory missing") {
		t.Errorf("output %q should report the missing directory", out.String())
	}

	// The word alone is a usage error.
	if err := legacyDispatch(newDispatchConverter(&fakeEngine{}), "*.pdf", []string{"batch"}, strings.NewReader(""), &out); err == nil {
		t.Error("bare batch word should be a usage error")
	}
}
