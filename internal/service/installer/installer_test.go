package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/causette/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *InstallState {
	t.Helper()
	t.Setenv("CAUSETTE_RUNTIME_PATH", t.TempDir())

	app, err := config.ParseAppConfig()
	require.NoError(t, err)
	speech, err := config.ParseSpeechConfig()
	require.NoError(t, err)
	return NewInstallState(app, speech)
}

func TestWriteEnv(t *testing.T) {
	state := newTestState(t)
	state.Speech.VoiceURL = "http://tts.local/speak"

	path, err := WriteEnv(state, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state.App.RuntimePath, ".env"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "CAUSETTE_ENDPOINT=http://localhost:5000/api/get_response\n")
	assert.Contains(t, content, "CAUSETTE_REQUEST_TIMEOUT=30s\n")
	assert.Contains(t, content, "CAUSETTE_SPEECH_LANG=fr-FR\n")
	assert.Contains(t, content, "CAUSETTE_VOICE_URL=http://tts.local/speak\n")
	assert.Contains(t, content, `CAUSETTE_VOICE_PLAYER="ffplay -nodisp -autoexit -loglevel quiet -"`)
	assert.NotContains(t, content, "CAUSETTE_RUNTIME_PATH")
	assert.NotContains(t, content, "CAUSETTE_NATIVE_VOICE")
}

func TestWriteEnv_Exists(t *testing.T) {
	state := newTestState(t)

	_, err := WriteEnv(state, false)
	require.NoError(t, err)

	_, err = WriteEnv(state, false)
	assert.ErrorIs(t, err, ErrEnvExists)

	_, err = WriteEnv(state, true)
	assert.NoError(t, err)
}

func TestChoiceStep(t *testing.T) {
	state := newTestState(t)
	step := NewChoiceStep("Stockage", []string{config.StorageSQLite, config.StorageMemory}, func(s *InstallState, v string) {
		s.App.Storage = v
	})

	next, _ := step.Update(tea.KeyMsg{Type: tea.KeyDown}, state, 80, 24)
	require.NotNil(t, next)
	assert.Contains(t, next.View(state), "❯ memory")

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter}, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, config.StorageMemory, state.App.Storage)
}

func TestInputStep(t *testing.T) {
	state := newTestState(t)

	required := NewInputStep("Adresse", "", false, func(s *InstallState, v string) { s.App.Endpoint = v })
	next, _ := required.Update(tea.KeyMsg{Type: tea.KeyEnter}, state, 80, 24)
	assert.NotNil(t, next, "empty required value must not advance")

	optional := NewInputStep("Voix", "", true, func(s *InstallState, v string) { s.Speech.VoiceURL = v })
	next, _ = optional.Update(tea.KeyMsg{Type: tea.KeyEnter}, state, 80, 24)
	assert.Nil(t, next)
	assert.Empty(t, state.Speech.VoiceURL)

	prefilled := NewInputStep("Adresse", "http://chat.local/api", false, func(s *InstallState, v string) { s.App.Endpoint = v })
	next, _ = prefilled.Update(tea.KeyMsg{Type: tea.KeyEnter}, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, "http://chat.local/api", state.App.Endpoint)
}
