package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/causette/internal/config"
	"github.com/sandevgo/causette/pkg/env"
)

var ErrEnvExists = errors.New(".env file already exists")

// WriteEnv saves state as a .env file inside the runtime directory and
// returns its path. An existing file is only replaced when force is set.
func WriteEnv(state *InstallState, force bool) (string, error) {
	path := state.App.GetRuntimePath()
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(path, ".env")
	if _, err := os.Stat(envPath); err == nil && !force {
		return envPath, fmt.Errorf("%w at %s", ErrEnvExists, envPath)
	}

	app, err := env.MarshalEnv(withoutRuntimePath(state.App))
	if err != nil {
		return "", fmt.Errorf("failed to encode app config: %w", err)
	}
	speech, err := env.MarshalEnv(state.Speech)
	if err != nil {
		return "", fmt.Errorf("failed to encode speech config: %w", err)
	}

	if err := os.WriteFile(envPath, []byte(app+speech), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", envPath, err)
	}
	return envPath, nil
}

// The .env lives inside the runtime directory, so it cannot choose it.
func withoutRuntimePath(c *config.AppConfig) *config.AppConfig {
	cp := *c
	cp.RuntimePath = ""
	return &cp
}
