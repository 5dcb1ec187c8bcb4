package command

import (
	"github.com/sandevgo/causette/internal/core"
)

func NewCommands(modes core.ModeSetter) []core.Command {
	return []core.Command{
		NewStopCommand(modes),
	}
}
