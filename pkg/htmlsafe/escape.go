// Package htmlsafe neutralizes user-supplied text before it is interpolated
// into HTML email bodies.
package htmlsafe

import "strings"

var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces the five HTML-significant characters with entities.
// Each input character is replaced at most once, so "&lt;" becomes "&amp;lt;".
func Escape(s string) string {
	return replacer.Replace(s)
}

// EscapeOptional escapes s, returning "" for empty input so templates can
// branch on presence.
func EscapeOptional(s string) string {
	if s == "" {
		return ""
	}
	return Escape(s)
}
