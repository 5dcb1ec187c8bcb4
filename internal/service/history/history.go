package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/pkg/log"
)

// Store is the chat log. Every append rewrites the whole JSON array under
// core.HistoryKey so that the stored value is always a complete log.
type Store struct {
	kv core.KVStore
	// persistMu orders writes so the stored log never falls behind memory.
	persistMu sync.Mutex

	mu       sync.Mutex
	messages []core.Message
}

func NewStore(kv core.KVStore) *Store {
	return &Store{kv: kv}
}

// Append keeps msg in memory even when persisting it fails. The returned
// error then wraps core.ErrStorage.
func (s *Store) Append(ctx context.Context, msg core.Message) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	snapshot := make([]core.Message, len(s.messages))
	copy(snapshot, s.messages)
	s.mu.Unlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: failed to encode history: %w", core.ErrStorage, err)
	}

	if err := s.kv.Set(ctx, core.HistoryKey, string(data)); err != nil {
		return fmt.Errorf("%w: failed to save history: %w", core.ErrStorage, err)
	}

	return nil
}

// LoadAll reads the persisted log and makes it the in-memory log. Missing or
// corrupt data yields an empty log.
func (s *Store) LoadAll(ctx context.Context) []core.Message {
	logger := log.FromCtx(ctx)

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	messages := s.read(ctx)
	if messages == nil {
		messages = []core.Message{}
	}

	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()

	logger.Debug().Int("messages", len(messages)).Msg("history loaded")
	return s.Messages()
}

func (s *Store) read(ctx context.Context) []core.Message {
	logger := log.FromCtx(ctx)

	raw, ok, err := s.kv.Get(ctx, core.HistoryKey)
	if err != nil {
		logger.Warn().Err(err).Msg("history unreadable, starting empty")
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var messages []core.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		logger.Warn().Err(err).Msg("history corrupt, starting empty")
		return nil
	}

	valid := messages[:0]
	for _, m := range messages {
		if m.Sender != core.SenderUser && m.Sender != core.SenderBot {
			logger.Warn().Str("sender", string(m.Sender)).Msg("skipping history entry with unknown sender")
			continue
		}
		valid = append(valid, m)
	}
	return valid
}

func (s *Store) Clear(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, core.HistoryKey); err != nil {
		return fmt.Errorf("%w: failed to clear history: %w", core.ErrStorage, err)
	}
	return nil
}

func (s *Store) Messages() []core.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]core.Message, len(s.messages))
	copy(res, s.messages)
	return res
}
