package core

import "time"

type AppConfig interface {
	GetRuntimePath() string
	GetDatabasePath() string
	GetLogPath() string
	GetEndpoint() string
	GetRequestTimeout() time.Duration
	GetStorageDriver() string
}

type SessionConfig interface {
	GetDisplayDelay() time.Duration
	GetFadeDelay() time.Duration
	GetTypewriterSpeed() time.Duration
}

type SpeechConfig interface {
	GetLang() string
	GetMaxChunk() int
	GetVoiceURL() string
	GetPlayerCommand() []string
	GetNativeCommand() string
}
