// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readme converts the header comment of an Emacs Lisp file into an
// Org mode README.
//
// The conversion runs in fixed stages: extract the leading comment block,
// collapse the GPL notice into one line, classify and rewrite each remaining
// line (indented runs become source blocks), turn `quoted' symbols into
// verbatim markup, and append a generated-by line. Nothing in this package
// fails; unrecognized input passes through as plain text.
package readme

import (
	"fmt"
	"strings"
)

const (
	// DefaultToolName is the name credited in the generated-by line.
	DefaultToolName = "el2readme"
	// DefaultToolURL is the project link in the generated-by line.
	DefaultToolURL = "https://github.com/pdiddy/el2readme"
)

// Options controls the parts of the output that are not derived from the
// source text.
type Options struct {
	// Filename is the source file name credited in the generated-by line.
	Filename string
	// CodeLanguage is the language of emitted source blocks.
	CodeLanguage string
	// ToolName and ToolURL identify the generator.
	ToolName string
	ToolURL  string
}

func (o Options) withDefaults() Options {
	if o.CodeLanguage == "" {
		o.CodeLanguage = DefaultCodeLanguage
	}
	if o.ToolName == "" {
		o.ToolName = DefaultToolName
	}
	if o.ToolURL == "" {
		o.ToolURL = DefaultToolURL
	}
	return o
}

// Result is the converted document plus facts about the conversion.
type Result struct {
	// Text is the Org document, one trailing newline included.
	Text string
	// HeaderLines counts the source lines taken as the header.
	HeaderLines int
	// Disclaimer is set when a GPL notice was collapsed.
	Disclaimer bool
	// License is the collapsed notice, valid when Disclaimer is set.
	License DisclaimerSpan
	// CodeBlocks counts the emitted source blocks.
	CodeBlocks int
}

// Convert turns the header of doc into an Org README.
func Convert(doc string, opts Options) Result {
	opts = opts.withDefaults()

	header := ExtractHeader(SplitLines(doc))
	res := Result{HeaderLines: len(header)}

	header, span, ok := RewriteDisclaimer(header)
	res.Disclaimer = ok
	res.License = span

	texts := make([]string, len(header))
	for i, line := range header {
		texts[i] = Strip(line, i == 0)
	}

	var out []string
	for i := 0; i < len(texts); {
		var cat Category
		if ok && i == span.Start {
			cat = Disclaimer
		} else {
			cat = Classify(texts[i])
		}
		if cat == CodeBlockStart {
			block, next := FormatCodeBlock(texts, i, opts.CodeLanguage)
			out = append(out, block...)
			res.CodeBlocks++
			i = next
			continue
		}

		out = append(out, Rewrite(texts[i], cat)...)
		i++
	}

	if len(out) > 0 {
		out = SplitLines(RewriteInline(strings.Join(out, "\n") + "\n"))
	}
	if len(out) > 0 && !isBlank(out[len(out)-1]) {
		out = append(out, "")
	}
	out = append(out, generatedBy(opts))

	for i, line := range out {
		out[i] = strings.TrimRight(line, " \t")
	}
	res.Text = strings.Join(out, "\n") + "\n"
	return res
}

func generatedBy(opts Options) string {
	return fmt.Sprintf("/This README was generated from %s by [[%s][%s]]./",
		opts.Filename, opts.ToolURL, opts.ToolName)
}
