// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import "strings"

// DefaultCodeLanguage names the source block language in the output.
const DefaultCodeLanguage = "emacs-lisp"

// FormatCodeBlock consumes the indented run starting at texts[start] and
// returns it wrapped in a source block, plus the index just past the run.
// The run takes every following line that is indented by at least four
// spaces or blank, and ends at the last indented line, so trailing blank
// lines are left for the caller. Exactly four spaces are removed from each
// body line.
func FormatCodeBlock(texts []string, start int, lang string) (block []string, next int) {
	next = start
	for i := start; i < len(texts); i++ {
		t := texts[i]
		if strings.HasPrefix(t, codeIndent) {
			next = i + 1
			continue
		}
		if isBlank(t) {
			continue
		}
		break
	}
	if next == start {
		return nil, start
	}

	body := texts[start:next]
	if lang == "" {
		lang = DefaultCodeLanguage
	}
	block = make([]string, 0, len(body)+2)
	block = append(block, "#+BEGIN_SRC "+lang)
	for _, t := range body {
		if isBlank(t) {
			block = append(block, "")
			continue
		}
		block = append(block, strings.TrimPrefix(t, codeIndent))
	}
	block = append(block, "#+END_SRC")
	return block, next
}
