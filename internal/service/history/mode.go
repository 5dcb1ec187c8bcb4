package history

import (
	"context"
	"fmt"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/pkg/log"
)

type ModeStore struct {
	kv core.KVStore
}

func NewModeStore(kv core.KVStore) *ModeStore {
	return &ModeStore{kv: kv}
}

// Get falls back to normal when the key is missing, unreadable or invalid.
func (s *ModeStore) Get(ctx context.Context) core.Mode {
	raw, ok, err := s.kv.Get(ctx, core.ModeKey)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("mode unreadable, using normal")
		return core.ModeNormal
	}
	if !ok {
		return core.ModeNormal
	}
	return core.ParseMode(raw)
}

func (s *ModeStore) Set(ctx context.Context, mode core.Mode) error {
	if err := s.kv.Set(ctx, core.ModeKey, string(mode)); err != nil {
		return fmt.Errorf("%w: failed to save mode: %w", core.ErrStorage, err)
	}
	return nil
}
