// Package sanitize strips markup from user-supplied text before it is
// policy-checked and stored. Memos are plain text; anything that looks like
// HTML must not survive into storage.
package sanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// PlainText removes every HTML element and returns the remaining text with
// entities decoded, so legitimate uses of <, > and & are kept as typed.
func PlainText(s string) string {
	return html.UnescapeString(policy.Sanitize(s))
}
