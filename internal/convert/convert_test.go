// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/el2readme/pkg/types"
)

const sampleSource = `;;; sample.el --- Sample package -*- lexical-binding: t -*-

;; Author: A. Hacker
;; Keywords: tools

;;; Commentary:

;; Call ` + "`sample-run'" + ` to start.
;;
;;     (sample-run)

;;; Code:

(provide 'sample)
`

// writeFile is a test helper that creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name         string
		missingInput bool
		preCreate    bool // create output before running
		skipExisting bool
		wantStatus   types.ConversionStatus
		wantLog      string
	}{
		{
			name:       "successful conversion",
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:       "overwrites existing output",
			preCreate:  true,
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:         "skip existing output",
			preCreate:    true,
			skipExisting: true,
			wantStatus:   types.ConversionSkipped,
			wantLog:      "skipped:",
		},
		{
			name:         "missing input",
			missingInput: true,
			wantStatus:   types.ConversionFailed,
			wantLog:      "failed:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := filepath.Join(dir, "sample.el")
			if !tt.missingInput {
				writeFile(t, dir, "sample.el", sampleSource)
			}
			output := filepath.Join(dir, "README.org")
			if tt.preCreate {
				writeFile(t, dir, "README.org", "existing")
			}

			var log bytes.Buffer
			res := ConvertFile(Job{Input: input, Output: output}, Options{SkipExisting: tt.skipExisting}, &log)

			if res.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", res.Status, tt.wantStatus)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", log.String(), tt.wantLog)
			}
			if tt.wantStatus == types.ConversionFailed && res.Error == "" {
				t.Error("failed result should carry an error message")
			}
		})
	}
}

func TestConvertFile_Output(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sample.el", sampleSource)
	output := filepath.Join(dir, "docs", "README.org")

	var log bytes.Buffer
	res := ConvertFile(Job{Input: input, Output: output}, Options{ToolName: "gen", ToolURL: "https://example.com/gen"}, &log)
	if res.Status != types.ConversionDone {
		t.Fatalf("expected ConversionDone, got %q (%s)", res.Status, res.Error)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := `#+TITLE: sample

Sample package

  - Author: A. Hacker
  - Keywords: tools

* Commentary

Call ~sample-run~ to start.

#+BEGIN_SRC emacs-lisp
 (sample-run)
#+END_SRC



/This README was generated from sample.el by [[https://example.com/gen][gen]]./
`
	if string(data) != want {
		t.Errorf("output mismatch\n got: %q\nwant: %q", string(data), want)
	}
	if res.HeaderLines != 13 {
		t.Errorf("header lines = %d, want 13", res.HeaderLines)
	}
	if res.CodeBlocks != 1 {
		t.Errorf("code blocks = %d, want 1", res.CodeBlocks)
	}
	if res.License != "" {
		t.Errorf("license = %q, want empty", res.License)
	}
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()

	// a converts, b is skipped (existing output), c is missing, d is excluded.
	a := writeFile(t, dir, "a.el", sampleSource)
	b := writeFile(t, dir, "b.el", sampleSource)
	writeFile(t, dir, "b.org", "existing")
	c := filepath.Join(dir, "c.el")
	d := writeFile(t, dir, "d-autoloads.el", sampleSource)

	m, err := NewMatcher([]string{"*-autoloads.el"})
	if err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	result := ConvertBatch([]string{c, a, b, d}, Options{SkipExisting: true, Exclude: m}, &log)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if result.Excluded != 1 {
		t.Errorf("excluded = %d, want 1", result.Excluded)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Total() != 4 {
		t.Errorf("total = %d, want 4", result.Total())
	}

	// The failure on c, listed first, must not stop a from converting.
	if _, err := os.Stat(filepath.Join(dir, "a.org")); err != nil {
		t.Errorf("expected a.org to be written: %v", err)
	}
	if got := []string{result.Files[0].Input, result.Files[1].Input}; got[0] != c || got[1] != a {
		t.Errorf("results out of argument order: %v", got)
	}

	if !strings.Contains(log.String(), "Batch summary:") {
		t.Error("batch output should contain summary line")
	}
}

func TestConvertBatch_OutputDir(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "mode.el", sampleSource)
	outDir := filepath.Join(dir, "out")

	var log bytes.Buffer
	result := ConvertBatch([]string{input}, Options{OutputDir: outDir}, &log)

	if result.Converted != 1 {
		t.Fatalf("converted = %d, want 1", result.Converted)
	}
	if _, err := os.Stat(filepath.Join(outDir, "mode.org")); err != nil {
		t.Errorf("expected output in %s: %v", outDir, err)
	}
}

func TestOutputPaths(t *testing.T) {
	if got, want := OutputPath(filepath.Join("lisp", "foo.el"), ""), filepath.Join("lisp", "README.org"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
	if got, want := OutputPath("foo.el", "DOC.org"), "DOC.org"; got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
	if got, want := BatchOutputPath(filepath.Join("lisp", "foo.el"), ""), filepath.Join("lisp", "foo.org"); got != want {
		t.Errorf("BatchOutputPath = %q, want %q", got, want)
	}
	if got, want := BatchOutputPath(filepath.Join("lisp", "foo.el"), "out"), filepath.Join("out", "foo.org"); got != want {
		t.Errorf("BatchOutputPath = %q, want %q", got, want)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := types.DefaultConfig()
	opts, err := OptionsFromConfig(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !opts.Exclude.Match("lisp/foo-autoloads.el") {
		t.Error("default config should exclude autoload files")
	}
	if opts.CodeLanguage != "emacs-lisp" {
		t.Errorf("code language = %q", opts.CodeLanguage)
	}

	cfg.Exclude = []string{"[unclosed"}
	if _, err := OptionsFromConfig(cfg, nil); err == nil {
		t.Error("expected error for invalid exclude pattern")
	}
}

func TestConvertFile_RefusesToOverwriteSource(t *testing.T) {
	dir := t.TempDir()
	body := ";;; notes --- keep me\nprecious body\n"
	input := writeFile(t, dir, "README.org", body)

	var log bytes.Buffer
	res := ConvertFile(Job{Input: input, Output: filepath.Join(dir, ".", "README.org")}, Options{}, &log)

	if res.Status != types.ConversionFailed {
		t.Errorf("status = %q, want %q", res.Status, types.ConversionFailed)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != body {
		t.Errorf("source was modified: %q", string(data))
	}
}

func TestConvertBatch_OrgInputIsNotOverwritten(t *testing.T) {
	dir := t.TempDir()
	body := ";;; notes --- keep me\nprecious body\n"
	input := writeFile(t, dir, "notes.org", body)

	var log bytes.Buffer
	result := ConvertBatch([]string{input}, Options{}, &log)

	if result.Failed != 1 || result.Converted != 0 {
		t.Errorf("converted = %d, failed = %d, want 0 and 1", result.Converted, result.Failed)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != body {
		t.Errorf("source was modified: %q", string(data))
	}
}

func TestConvertBatch_OutputCollision(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"a", "b"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	first := writeFile(t, filepath.Join(dir, "a"), "x.el", ";;; x.el --- from A\n")
	second := writeFile(t, filepath.Join(dir, "b"), "x.el", ";;; x.el --- from B\n")
	outDir := filepath.Join(dir, "out")

	var log bytes.Buffer
	result := ConvertBatch([]string{first, second}, Options{OutputDir: outDir}, &log)

	if result.Converted != 1 || result.Failed != 1 {
		t.Errorf("converted = %d, failed = %d, want 1 and 1", result.Converted, result.Failed)
	}
	if got := result.Files[1].Error; !strings.Contains(got, "collides with") {
		t.Errorf("second file error = %q, want collision", got)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "x.org"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "from A") || strings.Contains(string(data), "from B") {
		t.Errorf("output should hold the first file's README, got %q", string(data))
	}
}
