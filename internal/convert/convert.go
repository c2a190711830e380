// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert reads Emacs Lisp sources, converts their headers with
// package readme, and writes the resulting Org READMEs. It prints one status
// line per file and keeps going after per-file failures.
package convert

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/el2readme/internal/logging"
	"github.com/pdiddy/el2readme/internal/readme"
	"github.com/pdiddy/el2readme/pkg/types"
)

// orgExt is the extension of per-file outputs in batch mode.
const orgExt = ".org"

// Options controls file conversion.
type Options struct {
	// CodeLanguage, ToolName and ToolURL are passed to readme.Convert.
	CodeLanguage string
	ToolName     string
	ToolURL      string

	// SkipExisting leaves files alone whose output already exists.
	SkipExisting bool

	// OutputDir receives batch outputs. Empty means next to each input.
	OutputDir string

	// Exclude selects batch inputs to skip. Nil excludes nothing.
	Exclude *Matcher

	Logger *slog.Logger
}

// OptionsFromConfig builds Options from the shared configuration.
func OptionsFromConfig(cfg types.Config, logger *slog.Logger) (Options, error) {
	m, err := NewMatcher(cfg.Exclude)
	if err != nil {
		return Options{}, err
	}
	return Options{
		CodeLanguage: cfg.CodeLanguage,
		ToolName:     cfg.ToolName,
		ToolURL:      cfg.ToolURL,
		Exclude:      m,
		Logger:       logger,
	}, nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}

func (o Options) readmeOptions(input string) readme.Options {
	return readme.Options{
		Filename:     filepath.Base(input),
		CodeLanguage: o.CodeLanguage,
		ToolName:     o.ToolName,
		ToolURL:      o.ToolURL,
	}
}

// Job pairs a source file with the README path it is converted to.
type Job struct {
	Input  string
	Output string
}

// OutputPath returns the README path for input in the same directory,
// using name as the file name (types.DefaultOutput when empty).
func OutputPath(input, name string) string {
	if name == "" {
		name = types.DefaultOutput
	}
	return filepath.Join(filepath.Dir(input), name)
}

// BatchOutputPath returns the per-file output for input in batch mode:
// <base>.org in outDir, or next to input when outDir is empty.
func BatchOutputPath(input, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + orgExt
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	return filepath.Join(outDir, base)
}

// ConvertFile converts a single source file and writes the README. It
// reports the outcome on w and never panics on malformed input.
func ConvertFile(job Job, opts Options, w io.Writer) types.FileResult {
	log := opts.logger()
	res := types.FileResult{Input: job.Input, Output: job.Output}

	if opts.SkipExisting {
		if _, err := os.Stat(job.Output); err == nil {
			fmt.Fprintf(w, "skipped: %s (%s already exists)\n", job.Input, job.Output)
			res.Status = types.ConversionSkipped
			return res
		}
	}

	fail := func(err error) types.FileResult {
		fmt.Fprintf(w, "failed:  %s (%v)\n", job.Input, err)
		log.Error("conversion failed", "input", job.Input, "error", err)
		res.Status = types.ConversionFailed
		res.Error = err.Error()
		return res
	}

	if samePath(job.Input, job.Output) {
		return fail(fmt.Errorf("output %s would overwrite the source", job.Output))
	}

	src, err := os.ReadFile(job.Input)
	if err != nil {
		return fail(fmt.Errorf("reading source: %w", err))
	}

	start := time.Now()
	conv, err := convertSource(string(src), opts.readmeOptions(job.Input))
	if err != nil {
		return fail(err)
	}

	if err := writeOutput(job.Output, conv.Text); err != nil {
		return fail(err)
	}

	res.Status = types.ConversionDone
	res.HeaderLines = conv.HeaderLines
	res.CodeBlocks = conv.CodeBlocks
	if conv.Disclaimer {
		res.License = "GPL " + conv.License.Version
		if conv.License.Version == "" {
			res.License = "GPL"
		}
	}

	log.Debug("converted header",
		"input", job.Input,
		"output", job.Output,
		"header_lines", conv.HeaderLines,
		"disclaimer", conv.Disclaimer,
		"code_blocks", conv.CodeBlocks,
		"elapsed", time.Since(start))
	fmt.Fprintf(w, "converted: %s -> %s\n", job.Input, job.Output)
	return res
}

// ConvertBatch converts inputs one at a time in order. A failure on one file
// is reported and does not stop the rest.
func ConvertBatch(inputs []string, opts Options, w io.Writer) types.BatchResult {
	var result types.BatchResult
	// claimed maps each output path already taken to the input that owns it.
	claimed := make(map[string]string)
	for _, in := range inputs {
		if opts.Exclude.Match(in) {
			fmt.Fprintf(w, "excluded: %s\n", in)
			result.Add(types.FileResult{Input: in, Status: types.ConversionExcluded})
			continue
		}
		job := Job{Input: in, Output: BatchOutputPath(in, opts.OutputDir)}

		key := pathKey(job.Output)
		if owner, ok := claimed[key]; ok {
			err := fmt.Errorf("output %s collides with %s", job.Output, owner)
			fmt.Fprintf(w, "failed:  %s (%v)\n", in, err)
			opts.logger().Error("conversion failed", "input", in, "error", err)
			result.Add(types.FileResult{
				Input:  in,
				Output: job.Output,
				Status: types.ConversionFailed,
				Error:  err.Error(),
			})
			continue
		}
		claimed[key] = in

		result.Add(ConvertFile(job, opts, w))
	}
	result.FinishedAt = time.Now().UTC()

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d excluded, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Excluded, result.Failed, result.Total())
	return result
}

// pathKey normalizes path for comparison, falling back to a cleaned
// relative path when it cannot be made absolute.
func pathKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// samePath reports whether a and b name the same file, either by path or,
// when both exist, by identity (hard links, symlinks).
func samePath(a, b string) bool {
	if pathKey(a) == pathKey(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// convertSource runs the header conversion, turning a panic into an error
// so one bad file cannot take down a batch.
func convertSource(src string, opts readme.Options) (res readme.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("converting header: %v", r)
		}
	}()
	return readme.Convert(src, opts), nil
}

// writeOutput writes text to path, creating parent directories. The file is
// closed on every path; a close error is returned when nothing failed first.
func writeOutput(path, text string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if _, err := bw.WriteString(text); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
