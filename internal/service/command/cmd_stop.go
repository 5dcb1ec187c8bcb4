package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/causette/internal/core"
)

const ResearchOffText = "Mode recherche désactivé."

type StopCommand struct {
	modes core.ModeSetter
}

func NewStopCommand(modes core.ModeSetter) *StopCommand {
	return &StopCommand{modes: modes}
}

func (c *StopCommand) Name() string {
	return "stop"
}

func (c *StopCommand) Description() string {
	return "Quitte le mode recherche"
}

func (c *StopCommand) Execute(ctx context.Context, _ string, _ []string) (string, error) {
	if err := c.modes.SetMode(ctx, core.ModeNormal); err != nil {
		return "", fmt.Errorf("failed to reset mode: %w", err)
	}
	return ResearchOffText, nil
}
