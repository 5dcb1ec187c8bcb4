package render

import (
	"fmt"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/pkg/conv"
)

const restoredLinkText = "Lire plus"

// Block is one chat bubble ready for a terminal surface.
type Block struct {
	Sender core.Sender
	HTML   string
	// Text is the terminal rendering of HTML.
	Text  string
	Image string
	URL   string
}

func FromResponse(n core.Normalized) Block {
	b := Block{
		Sender: core.SenderBot,
		HTML:   n.HTML,
		Text:   conv.HTMLToText(n.HTML),
	}
	if n.Extra != nil {
		b.Image = n.Extra.Image
		b.URL = n.Extra.URL
	}
	return b
}

// FromMessage rebuilds a block from a stored message. Media are only shown
// when both the image and the link are present.
func FromMessage(m core.Message) Block {
	html := conv.EscapeOrPass(m.Text)
	b := Block{Sender: m.Sender}

	if m.HasMedia() {
		b.Image = *m.Image
		b.URL = *m.URL
		html += fmt.Sprintf(`<br><img src="%s" class="wiki-image"><br><a href="%s" target="_blank">%s</a>`,
			conv.EscapeHTML(b.Image), conv.EscapeHTML(b.URL), restoredLinkText)
	}

	b.HTML = html
	b.Text = conv.HTMLToText(html)
	return b
}
