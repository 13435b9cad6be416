package render

import "strings"

// htmlEscaper replaces in a single pass, so the & of an inserted entity is never escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes the characters that Telegram's HTML parse mode treats as markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
