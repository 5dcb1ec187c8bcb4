package history

import (
	"fmt"
	"strings"

	"github.com/sandevgo/causette/internal/core"
)

// Transcript renders the log as Markdown, one section per message.
func Transcript(messages []core.Message) string {
	var sb strings.Builder
	sb.WriteString("# Causette\n\n")

	for _, m := range messages {
		sb.WriteString(label(m.Sender))
		sb.WriteString(quote(m.Text))
		if m.HasMedia() {
			sb.WriteString(fmt.Sprintf("\n![](%s)\n\n[Lire plus](%s)\n", *m.Image, *m.URL))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func label(sender core.Sender) string {
	if sender == core.SenderUser {
		return "**Vous**  ›\n\n"
	}
	return "**Assistant**  ›\n\n"
}

func quote(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		sb.WriteString("> ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
