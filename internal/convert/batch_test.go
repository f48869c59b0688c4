// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/pdfbridge/internal/pagerange"
)

// setupBatchDir creates an input directory holding the named PDFs.
func setupBatchDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "in")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("pdf"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestBatchDir(t *testing.T) {
	// notes.txt sits in the directory but is outside the glob: Total
	// counts only the PDFs and the engine never sees it.
	inputDir := setupBatchDir(t, "a.pdf", "b.pdf", "c.pdf", "notes.txt")
	outputDir := filepath.Join(filepath.Dir(inputDir), "out")

	// Pre-create output for "b" to trigger the overwrite prompt.
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "b.docx"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Engine that fails for "c.pdf".
	eng := &fakeEngine{errFor: map[string]error{
		filepath.Join(inputDir, "c.pdf"): errors.New("bad pdf"),
	}}
	conv := newTestConverter(eng)

	var out bytes.Buffer
	result := conv.BatchDir(inputDir, outputDir, "*.pdf", func(string) Decision { return Skip }, &out)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}

	output := out.String()
	for _, want := range []string{"[1/3] a.pdf", "converted: a.docx", "skipped: b.pdf", "failed:  c.pdf", "Batch summary:"} {
		if !strings.Contains(output, want) {
			t.Errorf("output %q does not contain %q", output, want)
		}
	}

	for _, src := range eng.sources {
		if strings.HasSuffix(src, "notes.txt") {
			t.Errorf("non-PDF reached the engine: %s", src)
		}
	}
}

func TestBatchDirSkipAllAbandonsRemaining(t *testing.T) {
	inputDir := setupBatchDir(t, "a.pdf", "b.pdf", "c.pdf")
	outputDir := filepath.Join(filepath.Dir(inputDir), "out")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "a.docx"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	eng := &fakeEngine{}
	conv := newTestConverter(eng)

	var out bytes.Buffer
	result := conv.BatchDir(inputDir, outputDir, "", func(string) Decision { return SkipAll }, &out)

	if eng.calls() != 0 {
		t.Errorf("engine calls = %d, want 0", eng.calls())
	}
	if result.Converted != 0 || result.Skipped != 0 || result.Failed != 0 {
		t.Errorf("counters = %+v, want all zero", result)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
	if !strings.Contains(out.String(), "skipping all remaining files") {
		t.Errorf("output %q should mention skipping all", out.String())
	}
}

func TestBatchDirOverwriteAllPromptsOnce(t *testing.T) {
	inputDir := setupBatchDir(t, "a.pdf", "b.pdf")
	outputDir := filepath.Join(filepath.Dir(inputDir), "out")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.docx", "b.docx"} {
		if err := os.WriteFile(filepath.Join(outputDir, name), []byte("existing"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	conv := newTestConverter(&fakeEngine{})

	prompts := 0
	decide := func(string) Decision {
		prompts++
		return OverwriteAll
	}

	var out bytes.Buffer
	result := conv.BatchDir(inputDir, outputDir, "*.pdf", decide, &out)

	if prompts != 1 {
		t.Errorf("prompts = %d, want 1", prompts)
	}
	if result.Converted != 2 {
		t.Errorf("converted = %d, want 2", result.Converted)
	}
}

func TestBatchDirMissingInputDir(t *testing.T) {
	conv := newTestConverter(&fakeEngine{})

	var out bytes.Buffer
	result := conv.BatchDir(filepath.Join(t.TempDir(), "nope"), "", "", OverwriteAlways, &out)

	if result.Total != 0 {
		t.Errorf("total = %d, want 0", result.Total)
	}
	if !strings.Contains(out.String(), "input directory missing") {
		t.Errorf("output %q should mention the missing directory", out.String())
	}
}

func TestBatchDirNoMatches(t *testing.T) {
	inputDir := setupBatchDir(t) // empty
	conv := newTestConverter(&fakeEngine{})

	var out bytes.Buffer
	result := conv.BatchDir(inputDir, "", "*.pdf", OverwriteAlways, &out)

	if result.Total != 0 {
		t.Errorf("total = %d, want 0", result.Total)
	}
	if !strings.Contains(out.String(), "no files matching") {
		t.Errorf("output %q should mention no matches", out.String())
	}
}

func TestBatchDirDefaultOutputDir(t *testing.T) {
	inputDir := setupBatchDir(t, "a.pdf")
	conv := newTestConverter(&fakeEngine{})

	var out bytes.Buffer
	result := conv.BatchDir(inputDir, "", "", OverwriteAlways, &out)

	if result.Converted != 1 {
		t.Fatalf("converted = %d, want 1", result.Converted)
	}
	want := filepath.Join(inputDir+"_converted", "a.docx")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected output at %s: %v", want, err)
	}
}

func TestRunJobs(t *testing.T) {
	tmpDir := t.TempDir()
	srcs := make([]string, 4)
	for i, name := range []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf"} {
		srcs[i] = filepath.Join(tmpDir, name)
		if err := os.WriteFile(srcs[i], []byte("pdf"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	eng := &fakeEngine{errFor: map[string]error{srcs[2]: errors.New("bad pdf")}}
	conv := newTestConverter(eng)

	pages := pagerange.Range{Start: 0, End: 2, Bounded: true}
	jobs := make([]Job, len(srcs))
	for i, src := range srcs {
		jobs[i] = Job{Source: src, Dest: DocxPath(src, tmpDir), Pages: pages}
	}

	for _, workers := range []int{1, 3} {
		eng.mu.Lock()
		eng.sources = nil
		eng.pages = nil
		eng.mu.Unlock()

		result := conv.RunJobs(jobs, workers)

		if result.Converted != 3 {
			t.Errorf("workers=%d: converted = %d, want 3", workers, result.Converted)
		}
		if result.Failed != 1 {
			t.Errorf("workers=%d: failed = %d, want 1", workers, result.Failed)
		}
		if result.Total != 4 {
			t.Errorf("workers=%d: total = %d, want 4", workers, result.Total)
		}
		for _, p := range eng.pages {
			if p != pages {
				t.Errorf("workers=%d: engine received pages %+v, want %+v", workers, p, pages)
			}
		}
	}
}

func TestRunJobsEmpty(t *testing.T) {
	conv := newTestConverter(&fakeEngine{})
	result := conv.RunJobs(nil, 4)
	if result.Total != 0 || result.Converted != 0 {
		t.Errorf("result = %+v, want zero", result)
	}
}
