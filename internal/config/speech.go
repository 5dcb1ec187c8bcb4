package config

import (
	"context"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/causette/pkg/log"
)

type SpeechConfig struct {
	Lang     string `env:"CAUSETTE_SPEECH_LANG" envDefault:"fr-FR"`
	MaxChunk int    `env:"CAUSETTE_SPEECH_CHUNK" envDefault:"200"`

	// Remote engine, preferred when configured
	VoiceURL    string `env:"CAUSETTE_VOICE_URL"`
	VoicePlayer string `env:"CAUSETTE_VOICE_PLAYER" envDefault:"ffplay -nodisp -autoexit -loglevel quiet -"`

	// Overrides the platform TTS binary lookup
	NativeVoice string `env:"CAUSETTE_NATIVE_VOICE"`
}

func NewSpeechConfig(ctx context.Context) *SpeechConfig {
	c, err := ParseSpeechConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Speech config")
	}
	return c
}

func ParseSpeechConfig() (*SpeechConfig, error) {
	c := &SpeechConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c SpeechConfig) GetLang() string {
	return c.Lang
}

func (c SpeechConfig) GetMaxChunk() int {
	return c.MaxChunk
}

func (c SpeechConfig) GetVoiceURL() string {
	return c.VoiceURL
}

func (c SpeechConfig) GetPlayerCommand() []string {
	return strings.Fields(c.VoicePlayer)
}

func (c SpeechConfig) GetNativeCommand() string {
	return c.NativeVoice
}
