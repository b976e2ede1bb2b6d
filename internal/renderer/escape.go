package renderer

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// escapeHTML escapes user-controlled text for embedding in the generated
// markup and converts newlines to <br> tags.
func escapeHTML(text string) string {
	return strings.ReplaceAll(htmlEscaper.Replace(text), "\n", "<br>")
}
