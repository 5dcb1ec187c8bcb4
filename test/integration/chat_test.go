package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/causette/internal/config"
	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/history"
	"github.com/sandevgo/causette/internal/service/session"
	"github.com/sandevgo/causette/internal/storage/sqlite"
	"github.com/sandevgo/causette/internal/transport/api"
	"github.com/sandevgo/causette/internal/transport/cli"
	"github.com/sandevgo/causette/pkg/log"
	"github.com/sandevgo/causette/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var replies = map[string]string{
	"paris":      `{"type":"wikipedia","title":"Paris","summary":"Capital of France","image":"https://img/paris.jpg","url":"https://fr.wikipedia.org/wiki/Paris"}`,
	"/recherche": `{"type":"text","message":"Mode recherche activé."}`,
	"bonjour":    `"Salut !"`,
	"atlantide":  `{"type":"error","message":"Aucun article trouvé","search_url":"https://fr.wikipedia.org/w/index.php?search=atlantide"}`,
}

func TestChat_EndToEnd(t *testing.T) {
	var logs bytes.Buffer
	ctx, flushLog := log.NewContextWithLogger(context.Background(), true, &logs)
	defer flushLog()

	backend := test.NewBackend(t, replies)
	dbPath := filepath.Join(t.TempDir(), "causette.db")
	cfg := &config.AppConfig{Endpoint: backend.URL, RequestTimeout: time.Second}

	db, err := sqlite.NewDB(ctx, dbPath)
	require.NoError(t, err)
	kv := sqlite.NewKVStore(db)

	var screen bytes.Buffer
	sess := session.New(cfg, api.NewClient(cfg), history.NewStore(kv), history.NewModeStore(kv), cli.NewLinePresenter(&screen, 0))
	require.NoError(t, sess.Start(ctx))
	assert.Contains(t, screen.String(), session.WelcomeText)

	for _, q := range []string{"Bonjour", "Paris", "/recherche", "Atlantide", "panne"} {
		_, err := sess.Submit(ctx, q)
		require.NoError(t, err, q)
	}
	assert.Equal(t, core.ModeResearch, sess.Mode())

	out, err := sess.Submit(ctx, "/STOP")
	require.NoError(t, err)
	assert.False(t, out.Sent)
	assert.Equal(t, core.ModeNormal, sess.Mode())

	// /stop never reaches the server
	assert.Equal(t, []string{"Bonjour", "Paris", "/recherche", "Atlantide", "panne"}, backend.Questions())

	rendered := screen.String()
	assert.Contains(t, rendered, "Salut !")
	assert.Contains(t, rendered, "Capital of France")
	assert.Contains(t, rendered, "Aucun article trouvé")
	assert.Contains(t, rendered, "Désolé, je rencontre un problème technique 😢")
	require.NoError(t, db.Close())

	// a new process sees the same conversation and mode
	db, err = sqlite.NewDB(ctx, dbPath)
	require.NoError(t, err)
	defer db.Close()
	kv = sqlite.NewKVStore(db)

	var replay bytes.Buffer
	restored := session.New(cfg, api.NewClient(cfg), history.NewStore(kv), history.NewModeStore(kv), cli.NewLinePresenter(&replay, 0))
	require.NoError(t, restored.Start(ctx))

	msgs := history.NewStore(kv).LoadAll(ctx)
	require.Len(t, msgs, 13)
	assert.Equal(t, "Paris : Capital of France", msgs[4].Text)
	assert.True(t, msgs[4].HasMedia())
	assert.Equal(t, "Mode recherche désactivé.", msgs[12].Text)
	assert.Equal(t, core.ModeNormal, restored.Mode())
	assert.Contains(t, replay.String(), "Lire plus")
	assert.Contains(t, replay.String(), "https://img/paris.jpg")
}
