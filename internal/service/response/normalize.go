package response

import (
	"fmt"
	"strings"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/pkg/conv"
)

const (
	technicalErrorText = "Désolé, je rencontre un problème technique 😢"
	unknownText        = "❓ Réponse non comprise."
	wikiLinkText       = "Lire plus sur Wikipedia"
	searchLinkText     = "Voir sur Wikipedia"
)

// TechnicalError is the reply shown when the backend cannot be reached.
func TechnicalError() core.ServerResponse {
	return core.TextResponse{Message: technicalErrorText}
}

// Normalize turns any server reply into its display, speech and storage form.
func Normalize(resp core.ServerResponse) core.Normalized {
	switch r := resp.(type) {
	case core.TextResponse:
		return core.Normalized{
			HTML: conv.EscapeOrPass(r.Message),
			Text: r.Message,
		}
	case core.WikipediaResponse:
		return wikipedia(r)
	case core.ErrorResponse:
		return failure(r)
	default:
		return core.Normalized{HTML: unknownText, Text: unknownText}
	}
}

func wikipedia(r core.WikipediaResponse) core.Normalized {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<strong>%s</strong><br>", conv.EscapeHTML(r.Title))
	sb.WriteString(conv.EscapeHTML(r.Summary))
	sb.WriteString("<br>")
	if r.Image != "" {
		fmt.Fprintf(&sb, `<img src="%s" class="wiki-image"><br>`, conv.EscapeHTML(r.Image))
	}
	fmt.Fprintf(&sb, `<a href="%s" target="_blank">%s</a>`, conv.EscapeHTML(r.URL), wikiLinkText)

	return core.Normalized{
		HTML:  sb.String(),
		Text:  fmt.Sprintf("%s : %s", r.Title, r.Summary),
		Extra: &core.Extra{Image: r.Image, URL: r.URL},
	}
}

func failure(r core.ErrorResponse) core.Normalized {
	html := "❌ " + conv.EscapeHTML(r.Message)
	if r.SearchURL != "" {
		html += fmt.Sprintf(`<br><a href="%s" target="_blank">%s</a>`, conv.EscapeHTML(r.SearchURL), searchLinkText)
	}
	return core.Normalized{HTML: html, Text: r.Message}
}

// HistoryEntry is the bot message recorded for a normalized reply.
func HistoryEntry(n core.Normalized) core.Message {
	msg := core.BotMessage(n.Text)
	if n.Extra != nil {
		if n.Extra.Image != "" {
			image := n.Extra.Image
			msg.Image = &image
		}
		if n.Extra.URL != "" {
			url := n.Extra.URL
			msg.URL = &url
		}
	}
	return msg
}
