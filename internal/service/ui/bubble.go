package ui

import (
	"strings"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/render"
)

// Bubble renders a chat block with its sender label, wrapped to width.
// A zero width disables wrapping.
func Bubble(b render.Block, text string, width int) string {
	label := BotLabelStyle.Render(BotLabel + " ›")
	if b.Sender == core.SenderUser {
		label = UserLabelStyle.Render(UserLabel + " ›")
	}

	body := BubbleStyle
	media := MediaStyle
	if width > 4 {
		body = body.Width(width - 2)
		media = media.Width(width - 2)
	}

	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString("\n")
	sb.WriteString(body.Render(text))
	if b.Image != "" {
		sb.WriteString("\n")
		sb.WriteString(media.Render("🖼  " + b.Image))
	}
	return sb.String()
}
