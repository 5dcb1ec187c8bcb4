package conv

import (
	"strings"

	"github.com/inbucket/html2text"
)

// HTMLToText renders chat HTML as terminal text. Links keep their target
// next to the label.
func HTMLToText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	text, err := html2text.FromReader(strings.NewReader(html), html2text.Options{
		OmitLinks:    false,
		PrettyTables: true,
	})
	if err != nil {
		// fall back to the raw markup rather than dropping the reply
		return html
	}
	return strings.TrimSpace(text)
}
