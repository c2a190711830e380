// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import "strings"

const (
	titleLabel   = "#+TITLE: "
	subtitleSep  = " --- "
	listMarker   = "  - "
	dividerToken = "-----"
)

// Rewrite turns one stripped header line of the given category into output
// lines. Disclaimer is never returned by Classify; the caller assigns it to
// the line RewriteDisclaimer produced. CodeBlockStart lines are handled by FormatCodeBlock instead; passed
// here they come back unchanged.
func Rewrite(text string, cat Category) []string {
	switch cat {
	case Disclaimer:
		return []string{strings.TrimSpace(text)}
	case CodeSentinelHeading:
		return []string{""}
	case Title:
		return rewriteTitle(headingPattern.FindStringSubmatch(text)[2])
	case SectionHeading:
		return []string{rewriteHeading(text)}
	case ListItem:
		return []string{listMarker + strings.TrimPrefix(text, " ")}
	case IndentedPlain:
		return []string{text[1:]}
	case Divider:
		return []string{dividerToken}
	default:
		return []string{text}
	}
}

func rewriteTitle(content string) []string {
	content = strings.Replace(content, extension, "", 1)
	if title, subtitle, ok := strings.Cut(content, subtitleSep); ok {
		return []string{
			titleLabel + strings.TrimSpace(title),
			"",
			strings.TrimSpace(subtitle),
		}
	}
	return []string{titleLabel + strings.TrimSpace(content)}
}

// rewriteHeading maps each extra semicolon to one heading star.
func rewriteHeading(text string) string {
	m := headingPattern.FindStringSubmatch(text)
	line := strings.Repeat("*", len(m[1])) + " " + m[2]
	line = strings.TrimRight(line, " \t")
	return strings.TrimSuffix(line, ":")
}
