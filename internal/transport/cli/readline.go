package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/session"
	"github.com/sandevgo/causette/pkg/log"
)

// Chat is the session surface the line mode drives.
type Chat interface {
	Start(ctx context.Context) error
	Submit(ctx context.Context, input string) (session.Outcome, error)
	ExitResearch(ctx context.Context) error
	Clear(ctx context.Context) error
	LastBotMessage() (core.Message, bool)
}

type Speaker interface {
	Speak(ctx context.Context, text string) <-chan struct{}
	Stop()
}

// Line-mode controls. Anything else, slash commands included, is a message.
const (
	cmdExit    = "exit"
	cmdSpeak   = ":lire"
	cmdSilence = ":silence"
	cmdClear   = ":effacer"
	cmdNormal  = ":normal"
)

type ReadLine struct {
	chat      Chat
	speaker   Speaker
	presenter *LinePresenter
	rl        *readline.Instance
}

func NewReadLine(chat Chat, speaker Speaker, presenter *LinePresenter, runtimePath string) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "› ",
		HistoryFile:     filepath.Join(runtimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       cmdExit,
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		chat:      chat,
		speaker:   speaker,
		presenter: presenter,
		rl:        rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("line chat started, type 'exit' to quit")

	if err := r.chat.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	// readline already echoes what the user types
	r.presenter.MuteUserEcho()

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == cmdExit {
			return nil
		}

		if r.control(ctx, line) {
			continue
		}

		out, err := r.chat.Submit(ctx, line)
		switch {
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			logger.Error().Err(err).Msg("submit failed")
			fmt.Fprintf(r.rl.Stdout(), "Erreur : %v\n", err)
		case out.StorageErr != nil:
			fmt.Fprintln(r.rl.Stdout(), "⚠ historique non sauvegardé")
		}
	}
}

func (r *ReadLine) control(ctx context.Context, line string) bool {
	switch strings.ToLower(line) {
	case cmdSpeak:
		if last, ok := r.chat.LastBotMessage(); ok {
			r.speaker.Speak(ctx, last.Text)
		}
	case cmdSilence:
		r.speaker.Stop()
	case cmdClear:
		if err := r.chat.Clear(ctx); err != nil {
			fmt.Fprintf(r.rl.Stdout(), "Erreur : %v\n", err)
		}
	case cmdNormal:
		if err := r.chat.ExitResearch(ctx); err != nil {
			fmt.Fprintf(r.rl.Stdout(), "Erreur : %v\n", err)
		}
	default:
		return false
	}
	return true
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	r.speaker.Stop()
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
