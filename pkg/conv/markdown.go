package conv

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions   = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags    = html.CommonFlags | html.HrefTargetBlank
	exportPolicy = bluemonday.UGCPolicy()
)

func init() {
	// Rich bot replies are embedded as raw HTML in the transcript
	exportPolicy.AllowAttrs("class").OnElements("img")
	exportPolicy.AllowAttrs("target").OnElements("a")
}

// MarkdownToHTML renders a Markdown transcript to sanitized HTML.
func MarkdownToHTML(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	return string(exportPolicy.SanitizeBytes(unsafeHTML))
}
