// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import "regexp"

// quotedPattern matches the `symbol' quoting used in docstrings and comments.
var quotedPattern = regexp.MustCompile("`(\\S+)'")

// RewriteInline replaces every `text' in doc with ~text~, scanning left to
// right without overlaps. The match is greedy up to the last quote before
// whitespace, so `a'b' becomes ~a'b~.
func RewriteInline(doc string) string {
	return quotedPattern.ReplaceAllString(doc, "~${1}~")
}
