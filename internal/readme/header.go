// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import "strings"

// CommentMarker is the prefix every non-blank header line starts with.
const CommentMarker = ";;"

// ExtractHeader returns the leading run of doc in which every line is blank
// or starts with CommentMarker. It stops at the first line that is neither,
// so a later comment block is never picked up. The returned slice shares
// storage with doc but has its capacity clipped, so appending to it never
// overwrites doc.
func ExtractHeader(doc []string) []string {
	for i, line := range doc {
		if !isHeaderLine(line) {
			return doc[:i:i]
		}
	}
	return doc[:len(doc):len(doc)]
}

func isHeaderLine(line string) bool {
	return isBlank(line) || strings.HasPrefix(line, CommentMarker)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SplitLines splits text into lines, accepting both LF and CRLF endings.
// A trailing newline does not produce a final empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
