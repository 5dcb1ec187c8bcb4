package conv

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Pairs are matched in a single pass, so produced entities are never escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

var richPolicy = bluemonday.NewPolicy()

func init() {
	// Tags the backend emits in its canned replies and wikipedia cards
	richPolicy.AllowElements("strong", "b", "em", "i", "u", "br", "ul", "ol", "li", "code", "pre", "p", "span", "div")
	richPolicy.AllowAttrs("href", "target").OnElements("a")
	richPolicy.AllowAttrs("src").OnElements("img")
	richPolicy.AllowAttrs("class").OnElements("img", "code", "span", "div")
}

// EscapeHTML escapes & < > " ' for embedding text in HTML.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// LooksLikeHTML parses text as a document and reports whether the body holds
// at least one element.
func LooksLikeHTML(text string) bool {
	if !strings.Contains(text, "<") {
		return false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return false
	}
	return doc.Find("body").Children().Length() > 0
}

// EscapeOrPass escapes plain text and lets markup through. Markup is trusted
// upstream content; it is still filtered through RichPolicy, which keeps the
// formatting tags and drops scripts and event handlers.
func EscapeOrPass(text string) string {
	if LooksLikeHTML(text) {
		return SanitizeRich(text)
	}
	return EscapeHTML(text)
}

func SanitizeRich(html string) string {
	return richPolicy.Sanitize(html)
}
