package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/causette/pkg/log"
)

// Service runs the full-screen chat until the user quits.
type Service struct {
	chat      Chat
	speaker   Speaker
	presenter *Presenter
	speed     time.Duration
}

func NewService(chat Chat, speaker Speaker, presenter *Presenter, speed time.Duration) *Service {
	return &Service{
		chat:      chat,
		speaker:   speaker,
		presenter: presenter,
		speed:     speed,
	}
}

func (s *Service) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	program := tea.NewProgram(
		newModel(ctx, s.chat, s.speaker, s.speed),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	s.presenter.attach(program)
	s.speaker.OnStateChange(func(speaking bool) {
		s.presenter.send(speakingMsg(speaking))
	})

	logger.Info().Msg("chat window opened")
	_, err := program.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *Service) Shutdown(ctx context.Context) error {
	s.speaker.Stop()
	log.FromCtx(ctx).Info().Msg("chat window closed")
	return nil
}
