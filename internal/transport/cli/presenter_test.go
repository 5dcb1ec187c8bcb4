package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePresenter(t *testing.T) {
	var buf bytes.Buffer
	p := NewLinePresenter(&buf, 0)

	p.AppendMessage(core.UserMessage("Paris"))
	p.ShowTyping()
	n := response.Normalize(core.WikipediaResponse{
		Title:   "Paris",
		Summary: "Capital of France",
		Image:   "https://img/paris.jpg",
		URL:     "https://wiki/Paris",
	})
	require.NoError(t, p.ReplaceTyping(context.Background(), n))
	p.SetMode(core.ModeResearch)

	out := buf.String()
	assert.Contains(t, out, "Vous")
	assert.Contains(t, out, "Capital of France")
	assert.Contains(t, out, "https://img/paris.jpg")
	assert.Contains(t, out, "Mode recherche")
}

func TestLinePresenter_Typewriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewLinePresenter(&buf, time.Millisecond)

	require.NoError(t, p.ReplaceTyping(context.Background(), core.Normalized{HTML: "été", Text: "été"}))
	assert.Contains(t, buf.String(), "  été\n")
}

func TestLinePresenter_MuteUserEcho(t *testing.T) {
	var buf bytes.Buffer
	p := NewLinePresenter(&buf, 0)

	p.AppendMessage(core.UserMessage("rejoué"))
	p.MuteUserEcho()
	p.AppendMessage(core.UserMessage("tapé au clavier"))
	p.AppendMessage(core.BotMessage("réponse"))

	out := buf.String()
	assert.Contains(t, out, "rejoué")
	assert.NotContains(t, out, "tapé au clavier")
	assert.Contains(t, out, "réponse")
	assert.Equal(t, 1, strings.Count(out, "Vous"))
}
