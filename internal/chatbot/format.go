package chatbot

import (
	"regexp"
	"strings"
)

var (
	urlPattern = regexp.MustCompile(`https?://[^\s<]+`)

	// Terms wrapped in emphasis markup wherever they occur, case-insensitively.
	emphasisPattern = regexp.MustCompile(`(?i)(₹|discount|offer|sale|free|delivery|deposit|rental)`)
)

// FormatMessage converts composed plain text into widget markup: URLs become
// links, newlines become <br>, and the highlight terms are wrapped in
// <strong>. The substitutions are blind global passes with no escaping of
// markup inserted by an earlier pass: a highlight term occurring inside a
// URL (or inside another highlighted term) gets wrapped again, nesting the
// markers. The widget this replaces behaved the same way, so the quirk is
// kept rather than fixed.
func FormatMessage(text string) string {
	text = urlPattern.ReplaceAllString(text, `<a href="$0" target="_blank">$0</a>`)
	text = strings.ReplaceAll(text, "\n", "<br>")
	text = emphasisPattern.ReplaceAllString(text, "<strong>$1</strong>")
	return text
}
