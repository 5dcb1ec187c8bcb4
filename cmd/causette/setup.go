package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/causette/internal/config"
	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/history"
	"github.com/sandevgo/causette/internal/service/speech"
	"github.com/sandevgo/causette/internal/storage/memory"
	"github.com/sandevgo/causette/internal/storage/sqlite"
	"github.com/sandevgo/causette/internal/transport/api"
	"github.com/sandevgo/causette/pkg/log"
	"github.com/sandevgo/causette/pkg/srv"
)

// app holds everything a command needs besides its surface.
type app struct {
	appCfg    *config.AppConfig
	speechCfg *config.SpeechConfig

	history *history.Store
	modes   *history.ModeStore
	client  *api.Client
	speaker *speech.Controller

	// services releasing resources on shutdown
	cleanup []srv.Service
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	speechCfg := config.NewSpeechConfig(ctx)

	// 2. Storage
	kv, cleanup, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	// 3. Backend and speech
	return &app{
		appCfg:    appCfg,
		speechCfg: speechCfg,
		history:   history.NewStore(kv),
		modes:     history.NewModeStore(kv),
		client:    api.NewClient(appCfg),
		speaker:   initSpeech(speechCfg),
		cleanup:   cleanup,
	}
}

// close releases what newApp opened, for commands that do not run services.
func (a *app) close(ctx context.Context) {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		if err := a.cleanup[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", a.cleanup[i])
		}
	}
}

func initStorage(ctx context.Context, cfg core.AppConfig) (core.KVStore, []srv.Service, error) {
	switch cfg.GetStorageDriver() {
	case config.StorageMemory:
		log.FromCtx(ctx).Warn().Msg("in-memory storage, history is lost on exit")
		return memory.NewKVStore(), nil, nil
	case config.StorageSQLite, "":
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewKVStore(db), []srv.Service{srv.NewCleanup(db.Close)}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.GetStorageDriver())
	}
}

// initSpeech prefers the remote engine and falls back to the platform one.
func initSpeech(cfg core.SpeechConfig) *speech.Controller {
	return speech.NewController(cfg.GetMaxChunk(),
		speech.Engine{
			Backend: speech.NewRemoteEngine(cfg.GetVoiceURL(), cfg.GetPlayerCommand(), nil),
			Voice:   speech.RemoteVoice(cfg.GetLang()),
		},
		speech.Engine{
			Backend: speech.NewNativeEngine(cfg.GetNativeCommand()),
			Voice:   speech.NativeVoice(cfg.GetLang()),
		},
	)
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
