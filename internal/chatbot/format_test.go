package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessageLinkifiesURLs(t *testing.T) {
	got := FormatMessage("Visit https://vastrarent.in/faq today")
	assert.Contains(t, got, `<a href="https://vastrarent.in/faq" target="_blank">https://vastrarent.in/faq</a>`)
}

func TestFormatMessageNewlines(t *testing.T) {
	got := FormatMessage("line one\nline two\n\nline three")
	assert.Equal(t, "line one<br>line two<br><br>line three", got)
}

func TestFormatMessageEmphasis(t *testing.T) {
	got := FormatMessage("Get a discount on your rental, plus a refundable deposit.")
	assert.Contains(t, got, "<strong>discount</strong>")
	assert.Contains(t, got, "<strong>rental</strong>")
	assert.Contains(t, got, "<strong>deposit</strong>")
}

func TestFormatMessageEmphasisIsCaseInsensitive(t *testing.T) {
	got := FormatMessage("FREE Delivery")
	assert.Equal(t, "<strong>FREE</strong> <strong>Delivery</strong>", got)
}

func TestFormatMessageWrapsRupeeSign(t *testing.T) {
	got := FormatMessage("₹799 per day")
	assert.Equal(t, "<strong>₹</strong>799 per day", got)
}

// The emphasis pass runs over the already-linkified text with no escaping, so
// a highlight term inside a URL gets wrapped inside the href too. The widget
// this replaces behaved the same way.
func TestFormatMessageEmphasisInsideURL(t *testing.T) {
	got := FormatMessage("See https://vastrarent.in/free-delivery")
	assert.Contains(t, got, `href="https://vastrarent.in/<strong>free</strong>-<strong>delivery</strong>"`)
}

func TestFormatMessageEmptyInput(t *testing.T) {
	assert.Equal(t, "", FormatMessage(""))
}
