// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus is the outcome of converting one source file.
type ConversionStatus string

const (
	ConversionDone     ConversionStatus = "converted"
	ConversionSkipped  ConversionStatus = "skipped"
	ConversionExcluded ConversionStatus = "excluded"
	ConversionFailed   ConversionStatus = "failed"
)

// FileResult records what happened to one source file.
type FileResult struct {
	// Input is the source file path.
	Input string `json:"input" yaml:"input"`

	// Output is the README path written, or that would have been written.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// Error holds the failure message when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// HeaderLines counts the source lines taken as the header.
	HeaderLines int `json:"header_lines,omitempty" yaml:"header_lines,omitempty"`

	// License is the collapsed GPL label (e.g. "GPL 3"), if any.
	License string `json:"license,omitempty" yaml:"license,omitempty"`

	// CodeBlocks counts the source blocks emitted.
	CodeBlocks int `json:"code_blocks,omitempty" yaml:"code_blocks,omitempty"`
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int `json:"converted" yaml:"converted"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Excluded  int `json:"excluded" yaml:"excluded"`
	Failed    int `json:"failed" yaml:"failed"`

	// Files lists per-file results in argument order.
	Files []FileResult `json:"files" yaml:"files"`

	// FinishedAt is when the last file was processed.
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Excluded + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Add records one file result and updates the counters.
func (r *BatchResult) Add(f FileResult) {
	switch f.Status {
	case ConversionDone:
		r.Converted++
	case ConversionSkipped:
		r.Skipped++
	case ConversionExcluded:
		r.Excluded++
	case ConversionFailed:
		r.Failed++
	}
	r.Files = append(r.Files, f)
}
