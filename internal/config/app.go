package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/causette/pkg/log"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

type AppConfig struct {
	RuntimePath string `env:"CAUSETTE_RUNTIME_PATH" envDefault:".causette"`

	// Backend
	Endpoint       string        `env:"CAUSETTE_ENDPOINT" envDefault:"http://localhost:5000/api/get_response"`
	RequestTimeout time.Duration `env:"CAUSETTE_REQUEST_TIMEOUT" envDefault:"30s"`

	// Presentation timings
	DisplayDelay    time.Duration `env:"CAUSETTE_DISPLAY_DELAY" envDefault:"800ms"`
	FadeDelay       time.Duration `env:"CAUSETTE_FADE_DELAY" envDefault:"300ms"`
	TypewriterSpeed time.Duration `env:"CAUSETTE_TYPEWRITER_SPEED" envDefault:"20ms"`

	// Persistence: sqlite or memory
	Storage string `env:"CAUSETTE_STORAGE" envDefault:"sqlite"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "causette.db")
}

func (c AppConfig) GetLogPath() string {
	return LogPath(c.RuntimePath)
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetEndpoint() string {
	return c.Endpoint
}

func (c AppConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

func (c AppConfig) GetStorageDriver() string {
	return c.Storage
}

func (c AppConfig) GetDisplayDelay() time.Duration {
	return c.DisplayDelay
}

func (c AppConfig) GetFadeDelay() time.Duration {
	return c.FadeDelay
}

func (c AppConfig) GetTypewriterSpeed() time.Duration {
	return c.TypewriterSpeed
}
