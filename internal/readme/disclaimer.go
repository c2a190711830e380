// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	disclaimerOpen  = "is free software"
	disclaimerClose = "If not, see <http://www.gnu.org/licenses/>."
	laterQualifier  = "any later version"
)

// versionPattern captures the first digit after the word "version". The
// digit may sit on the next comment line.
var versionPattern = regexp.MustCompile(`version\D*?(\d)`)

// DisclaimerSpan locates the GPL boilerplate paragraph inside a header.
type DisclaimerSpan struct {
	// Start is the index of the line holding the opening phrase.
	Start int
	// End is one past the line holding the closing citation.
	End int
	// Version is the GPL version digit, or "" when none was found.
	Version string
	// OrLater is set when the paragraph allows any later version.
	OrLater bool
}

// FindDisclaimer looks for the standard GPL notice in header. Both the
// opening phrase and the closing citation must be present; a notice without
// its closing line is not reported, so nothing gets cut at an unknown end.
func FindDisclaimer(header []string) (DisclaimerSpan, bool) {
	start := -1
	for i, line := range header {
		if strings.Contains(line, disclaimerOpen) {
			start = i
			break
		}
	}
	if start < 0 {
		return DisclaimerSpan{}, false
	}

	end := -1
	for i := start; i < len(header); i++ {
		if strings.Contains(header[i], disclaimerClose) {
			end = i + 1
			break
		}
	}
	if end < 0 {
		return DisclaimerSpan{}, false
	}

	text := strings.Join(header[start:end], "\n")
	span := DisclaimerSpan{
		Start:   start,
		End:     end,
		OrLater: strings.Contains(text, laterQualifier),
	}
	if m := versionPattern.FindStringSubmatch(text); m != nil {
		span.Version = m[1]
	}
	return span, true
}

// Attribution returns the one-line license statement that replaces the span.
func (s DisclaimerSpan) Attribution() string {
	label := "GPL"
	url := "https://www.gnu.org/licenses/gpl.html"
	if s.Version != "" {
		label = "GPL " + s.Version
		url = fmt.Sprintf("https://www.gnu.org/licenses/gpl-%s.0.html", s.Version)
	}
	line := fmt.Sprintf("This program is licensed under [[%s][%s]]", url, label)
	if s.OrLater {
		return line + " or later."
	}
	return line + "."
}

// RewriteDisclaimer collapses the GPL notice in header into a single comment
// line holding its Attribution. The returned span's Start is the index of
// that line. When no complete notice exists, header is returned as is and
// ok is false.
func RewriteDisclaimer(header []string) (out []string, span DisclaimerSpan, ok bool) {
	span, ok = FindDisclaimer(header)
	if !ok {
		return header, DisclaimerSpan{}, false
	}

	out = make([]string, 0, len(header)-(span.End-span.Start)+1)
	out = append(out, header[:span.Start]...)
	out = append(out, CommentMarker+" "+span.Attribution())
	out = append(out, header[span.End:]...)
	return out, span, true
}
