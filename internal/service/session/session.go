package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/command"
	"github.com/sandevgo/causette/internal/service/response"
	"github.com/sandevgo/causette/pkg/conv"
	"github.com/sandevgo/causette/pkg/log"
)

const (
	WelcomeText = "Bonjour ! Je suis votre assistant IA. Comment puis-je vous aider aujourd'hui ?"

	sessionID = "local"
)

// Backend mode commands. The server switches its own mode on these and the
// session mirrors it once the reply arrived.
var modeCommands = map[string]core.Mode{
	"/recherche": core.ModeResearch,
	"/quitter":   core.ModeNormal,
}

// Outcome describes one submission cycle.
type Outcome struct {
	// Sent is true when a request reached the transport.
	Sent  bool
	Reply *core.Normalized
	// StorageErr is the first persistence failure of the cycle. The session
	// keeps running in memory when it is set.
	StorageErr error
}

func (o *Outcome) record(err error) {
	if err != nil && o.StorageErr == nil {
		o.StorageErr = err
	}
}

type Session struct {
	cfg       core.SessionConfig
	client    core.BackendClient
	history   core.HistoryRepository
	modes     core.ModeRepository
	presenter core.Presenter
	router    core.CmdRouter

	busy atomic.Bool

	mu   sync.RWMutex
	mode core.Mode
}

func New(
	cfg core.SessionConfig,
	client core.BackendClient,
	history core.HistoryRepository,
	modes core.ModeRepository,
	presenter core.Presenter,
) *Session {
	s := &Session{
		cfg:       cfg,
		client:    client,
		history:   history,
		modes:     modes,
		presenter: presenter,
		mode:      core.ModeNormal,
	}
	s.router = command.New(command.NewCommands(s))
	return s
}

// Start restores the mode and replays the stored log, or greets the user
// when there is nothing to replay.
func (s *Session) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	mode := s.modes.Get(ctx)
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	s.presenter.SetMode(mode)

	messages := s.history.LoadAll(ctx)
	if len(messages) == 0 {
		if err := s.append(ctx, core.BotMessage(WelcomeText)); err != nil {
			logger.Warn().Err(err).Msg("welcome message not persisted")
		}
		return nil
	}

	for _, m := range messages {
		s.presenter.AppendMessage(m)
	}
	logger.Info().Int("messages", len(messages)).Str("mode", string(mode)).Msg("session restored")
	return nil
}

// Submit runs one full exchange. Only one exchange runs at a time; a second
// call while one is in flight returns core.ErrBusy and changes nothing.
func (s *Session) Submit(ctx context.Context, input string) (Outcome, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Outcome{}, core.ErrEmptyInput
	}
	if !s.busy.CompareAndSwap(false, true) {
		return Outcome{}, core.ErrBusy
	}
	defer s.busy.Store(false)

	logger := log.FromCtx(ctx).With().Str("request_id", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	var out Outcome
	out.record(s.append(ctx, core.UserMessage(input)))
	s.presenter.ClearInput()

	if err := wait(ctx, s.cfg.GetDisplayDelay()); err != nil {
		return out, err
	}

	if reply, handled := s.router.Execute(ctx, sessionID, input); handled {
		logger.Debug().Str("input", input).Msg("handled locally")
		n := core.Normalized{HTML: conv.EscapeHTML(reply), Text: reply}
		out.Reply = &n
		out.record(s.append(ctx, response.HistoryEntry(n)))
		return out, nil
	}

	s.presenter.ShowTyping()
	out.Sent = true

	resp, err := s.client.Ask(ctx, input)
	failed := err != nil
	if failed {
		if errors.Is(err, context.Canceled) {
			return out, err
		}
		logger.Error().Err(err).Msg("backend request failed")
		resp = response.TechnicalError()
	}

	n := response.Normalize(resp)
	out.Reply = &n

	if err := wait(ctx, s.cfg.GetFadeDelay()); err != nil {
		return out, err
	}
	if err := s.presenter.ReplaceTyping(ctx, n); err != nil {
		logger.Warn().Err(err).Msg("reveal interrupted")
	}
	out.record(s.persist(ctx, response.HistoryEntry(n)))

	if !failed {
		if mode, ok := modeCommands[strings.ToLower(input)]; ok {
			out.record(s.SetMode(ctx, mode))
		}
	}

	logger.Info().Bool("failed", failed).Str("mode", string(s.Mode())).Msg("exchange complete")
	return out, nil
}

// ExitResearch is the explicit way out of research mode. Like Clear, it is
// refused with core.ErrBusy while an exchange is in flight.
func (s *Session) ExitResearch(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return core.ErrBusy
	}
	defer s.busy.Store(false)

	err := s.SetMode(ctx, core.ModeNormal)
	if appendErr := s.append(ctx, core.BotMessage(command.ResearchOffText)); err == nil {
		err = appendErr
	}
	return err
}

// SetMode updates the mode even when it cannot be persisted.
func (s *Session) SetMode(ctx context.Context, mode core.Mode) error {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	s.presenter.SetMode(mode)

	if err := s.modes.Set(ctx, mode); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to persist mode")
		return err
	}
	return nil
}

// Clear wipes the log and starts over with the welcome message.
func (s *Session) Clear(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return core.ErrBusy
	}
	defer s.busy.Store(false)

	clearErr := s.history.Clear(ctx)
	s.presenter.Reset()

	if err := s.append(ctx, core.BotMessage(WelcomeText)); err != nil && clearErr == nil {
		clearErr = err
	}
	if clearErr != nil {
		return fmt.Errorf("failed to clear history: %w", clearErr)
	}
	return nil
}

func (s *Session) Mode() core.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Session) Busy() bool {
	return s.busy.Load()
}

// LastBotMessage returns the most recent bot entry of the log.
func (s *Session) LastBotMessage() (core.Message, bool) {
	messages := s.history.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Sender == core.SenderBot {
			return messages[i], true
		}
	}
	return core.Message{}, false
}

// append shows msg and records it.
func (s *Session) append(ctx context.Context, msg core.Message) error {
	s.presenter.AppendMessage(msg)
	return s.persist(ctx, msg)
}

func (s *Session) persist(ctx context.Context, msg core.Message) error {
	if err := s.history.Append(ctx, msg); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("sender", string(msg.Sender)).Msg("history not persisted")
		return err
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
