package core

import "context"

const (
	HistoryKey = "chatHistory"
	ModeKey    = "chatMode"
)

// KVStore is the local string key-value store behind the history and the mode.
// Get reports ok=false for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type HistoryRepository interface {
	Append(ctx context.Context, msg Message) error
	LoadAll(ctx context.Context) []Message
	Clear(ctx context.Context) error
	Messages() []Message
}

type ModeRepository interface {
	Get(ctx context.Context) Mode
	Set(ctx context.Context, mode Mode) error
}
