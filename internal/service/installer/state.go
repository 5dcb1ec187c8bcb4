package installer

import (
	"github.com/sandevgo/causette/internal/config"
)

// InstallState is the configuration the wizard fills in.
type InstallState struct {
	App    *config.AppConfig
	Speech *config.SpeechConfig
}

func NewInstallState(app *config.AppConfig, speech *config.SpeechConfig) *InstallState {
	return &InstallState{
		App:    app,
		Speech: speech,
	}
}
