// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import (
	"regexp"
	"strings"
)

// Category is the structural role of a single header line.
type Category int

const (
	Blank Category = iota
	PlainText
	IndentedPlain
	Disclaimer
	Title
	SectionHeading
	CodeSentinelHeading
	Divider
	ListItem
	CodeBlockStart
)

func (c Category) String() string {
	switch c {
	case Blank:
		return "blank"
	case PlainText:
		return "plain"
	case IndentedPlain:
		return "indented"
	case Disclaimer:
		return "disclaimer"
	case Title:
		return "title"
	case SectionHeading:
		return "heading"
	case CodeSentinelHeading:
		return "code-sentinel"
	case Divider:
		return "divider"
	case ListItem:
		return "list-item"
	case CodeBlockStart:
		return "code-start"
	default:
		return "unknown"
	}
}

const (
	// extension is the suffix of the module's own filename on its title line.
	extension  = ".el"
	codeIndent = "    "
)

var (
	// cookiePattern matches a file-local mode cookie such as
	// "-*- lexical-binding: t -*-".
	cookiePattern = regexp.MustCompile(`-\*-.*?-\*-`)

	// headingPattern matches a stripped line that still carries extra
	// semicolons: group 1 is the extra markers, group 2 the content.
	headingPattern = regexp.MustCompile(`^(;+) (.+)$`)

	codeSentinelPattern = regexp.MustCompile(`^\s?Code:?\s*$`)

	// listPattern is the "Label:" heuristic. It also fires on prose that
	// opens with a word and a colon.
	listPattern = regexp.MustCompile(`^ ?[[:alnum:]-]+:`)
)

// Strip removes the comment marker from a header line. For the first line it
// also drops the mode cookie.
func Strip(line string, first bool) string {
	text := strings.TrimPrefix(line, CommentMarker)
	if first && strings.Contains(text, "-*-") {
		text = strings.TrimRight(cookiePattern.ReplaceAllString(text, ""), " \t")
	}
	return text
}

// Classify assigns a category to a stripped header line. Checks run in a
// fixed order and the first match wins: headings, list labels, indented
// code, single-space prose, dividers, then everything else.
func Classify(text string) Category {
	if isBlank(text) {
		return Blank
	}

	if m := headingPattern.FindStringSubmatch(text); m != nil {
		content := m[2]
		switch {
		case codeSentinelPattern.MatchString(content):
			return CodeSentinelHeading
		case strings.Contains(content, extension):
			return Title
		default:
			return SectionHeading
		}
	}

	if listPattern.MatchString(text) {
		return ListItem
	}

	if strings.HasPrefix(text, codeIndent) {
		return CodeBlockStart
	}

	if strings.HasPrefix(text, " ") && !strings.HasPrefix(text, "  ") {
		return IndentedPlain
	}

	if strings.TrimRight(text, " \t") == CommentMarker {
		return Divider
	}

	return PlainText
}
