package response

import (
	"strings"
	"testing"

	"github.com/sandevgo/causette/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Text(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantHTML string
	}{
		{"plain", "Bonjour", "Bonjour"},
		{"comparison", "2 < 3 && 4 > 1", "2 &lt; 3 &amp;&amp; 4 &gt; 1"},
		{"quotes", `l'été "chaud"`, "l&#039;été &quot;chaud&quot;"},
		{"markup passes", "<strong>ok</strong>", "<strong>ok</strong>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(core.TextResponse{Message: tt.message})
			assert.Equal(t, tt.message, n.Text)
			assert.Equal(t, tt.wantHTML, n.HTML)
			assert.Nil(t, n.Extra)
		})
	}
}

func TestNormalize_PlainTextHasNoRawBrackets(t *testing.T) {
	for _, text := range []string{"a < b", "x > y", "<3", "=> arrow"} {
		n := Normalize(core.TextResponse{Message: text, Legacy: true})
		assert.Equal(t, text, n.Text)
		assert.NotContains(t, n.HTML, "<", text)
		assert.NotContains(t, n.HTML, ">", text)
	}
}

func TestNormalize_Paris(t *testing.T) {
	resp := core.DecodeServerResponse([]byte(`{"type":"wikipedia","title":"Paris","summary":"Capital of France","image":null,"url":"https://fr.wikipedia.org/wiki/Paris"}`))

	n := Normalize(resp)
	assert.Equal(t, "Paris : Capital of France", n.Text)
	assert.True(t, strings.HasPrefix(n.HTML, "<strong>Paris</strong><br>Capital of France<br>"))
	assert.NotContains(t, n.HTML, "<img")
	assert.Contains(t, n.HTML, `<a href="https://fr.wikipedia.org/wiki/Paris" target="_blank">Lire plus sur Wikipedia</a>`)

	msg := HistoryEntry(n)
	assert.Equal(t, core.SenderBot, msg.Sender)
	assert.Equal(t, "Paris : Capital of France", msg.Text)
	assert.Nil(t, msg.Image)
	require.NotNil(t, msg.URL)
	assert.Equal(t, "https://fr.wikipedia.org/wiki/Paris", *msg.URL)
}

func TestNormalize_WikipediaWithImage(t *testing.T) {
	n := Normalize(core.WikipediaResponse{
		Title:   "Tour <Eiffel>",
		Summary: "Monument & symbole",
		Image:   "https://img/eiffel.jpg",
		URL:     "https://wiki/Eiffel",
	})

	assert.Contains(t, n.HTML, "<strong>Tour &lt;Eiffel&gt;</strong>")
	assert.Contains(t, n.HTML, "Monument &amp; symbole")
	assert.Contains(t, n.HTML, `<img src="https://img/eiffel.jpg" class="wiki-image"><br>`)
	require.NotNil(t, n.Extra)
	assert.Equal(t, "https://img/eiffel.jpg", n.Extra.Image)

	msg := HistoryEntry(n)
	assert.True(t, msg.HasMedia())
}

func TestNormalize_Error(t *testing.T) {
	n := Normalize(core.ErrorResponse{Message: "Aucun article", SearchURL: "https://wiki/search?q=x"})
	assert.Equal(t, "Aucun article", n.Text)
	assert.Equal(t, `❌ Aucun article<br><a href="https://wiki/search?q=x" target="_blank">Voir sur Wikipedia</a>`, n.HTML)

	n = Normalize(core.ErrorResponse{Message: "Aucun article"})
	assert.Equal(t, "❌ Aucun article", n.HTML)
}

func TestNormalize_Unknown(t *testing.T) {
	for _, body := range []string{`{"type":"weather"}`, `not json`, `{}`, `{"type":"text"}`} {
		n := Normalize(core.DecodeServerResponse([]byte(body)))
		assert.Equal(t, "❓ Réponse non comprise.", n.Text, body)
		assert.Equal(t, n.Text, n.HTML, body)
	}
}

func TestTechnicalError(t *testing.T) {
	n := Normalize(TechnicalError())
	assert.Equal(t, "Désolé, je rencontre un problème technique 😢", n.Text)
	assert.Equal(t, n.Text, HistoryEntry(n).Text)
}
