// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/pdfbridge/internal/pagerange"
	"github.com/pdiddy/pdfbridge/pkg/types"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runnableCmds  map[string]bool // "bin arg1 arg2" -> whether RunSilent succeeds
	outputFunc    func(name string, args []string) ([]byte, error)
	ran           []string // every RunOutput invocation, joined
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunSilent(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if m.runnableCmds[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (m *mockExecutor) RunOutput(name string, args ...string) ([]byte, error) {
	m.ran = append(m.ran, name+" "+strings.Join(args, " "))
	if m.outputFunc != nil {
		return m.outputFunc(name, args)
	}
	return nil, nil
}

func TestPageArgs(t *testing.T) {
	tests := []struct {
		name  string
		pages pagerange.Range
		want  []string
	}{
		{
			name:  "whole document passes no flags",
			pages: pagerange.Range{},
			want:  nil,
		},
		{
			name:  "bounded range passes start and end verbatim",
			pages: pagerange.Range{Start: 0, End: 5, Bounded: true},
			want:  []string{"--start", "0", "--end", "5"},
		},
		{
			name:  "single page",
			pages: pagerange.Range{Start: 2, End: 3, Bounded: true},
			want:  []string{"--start", "2", "--end", "3"},
		},
		{
			name:  "open end passes only start",
			pages: pagerange.Range{Start: 4},
			want:  []string{"--start", "4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageArgs(tt.pages)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("pageArgs(%+v) = %v, want %v", tt.pages, got, tt.want)
			}
		})
	}
}

func TestCLICheck(t *testing.T) {
	tests := []struct {
		name    string
		exec    *mockExecutor
		wantErr string
	}{
		{
			name: "binary on PATH",
			exec: &mockExecutor{availableBins: map[string]bool{"pdf2docx": true}},
		},
		{
			name:    "binary missing names the install command",
			exec:    &mockExecutor{availableBins: map[string]bool{}},
			wantErr: "pip install pdf2docx",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI("", tt.exec)
			err := c.Check()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q should contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCLIConvert(t *testing.T) {
	exec := &mockExecutor{}
	c := newCLI("", exec)

	pages := pagerange.Range{Start: 1, End: 4, Bounded: true}
	if err := c.Convert("in.pdf", "out.docx", pages); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "pdf2docx convert in.pdf out.docx --start 1 --end 4"
	if len(exec.ran) != 1 || exec.ran[0] != want {
		t.Errorf("ran %v, want [%s]", exec.ran, want)
	}
}

func TestCLIConvertFailureCarriesToolOutput(t *testing.T) {
	exec := &mockExecutor{
		outputFunc: func(string, []string) ([]byte, error) {
			return []byte("Traceback: broken xref table\n"), errors.New("exit status 1")
		},
	}
	c := newCLI("", exec)

	err := c.Convert("in.pdf", "out.docx", pagerange.Range{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "broken xref table") {
		t.Errorf("error should carry tool output, got: %v", err)
	}
}

func TestCLICustomBinaryName(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"pdf2docx-nightly": true}}
	c := newCLI("pdf2docx-nightly", exec)
	if c.Name() != "pdf2docx-nightly" {
		t.Errorf("Name() = %q, want %q", c.Name(), "pdf2docx-nightly")
	}
	if err := c.Check(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	eng, err := New(types.EngineConfig{Backend: types.BackendPdf2docx})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := eng.(*CLI); !ok {
		t.Errorf("expected *CLI, got %T", eng)
	}

	// Empty backend defaults to the CLI.
	eng, err = New(types.EngineConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := eng.(*CLI); !ok {
		t.Errorf("expected *CLI for empty backend, got %T", eng)
	}

	if _, err := New(types.EngineConfig{Backend: "grobid"}); err == nil {
		t.Error("unknown backend should be rejected")
	}
}
