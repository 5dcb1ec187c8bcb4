package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/pkg/log"
)

// Router handles the commands that never reach the backend. Only the bare
// command matches: "/stop foo" is a question and is reported as unhandled,
// like anything else the router does not know, so the caller forwards it.
type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands: make(map[string]core.Command),
	}

	for _, cmd := range commands {
		c.commands[strings.ToLower(cmd.Name())] = cmd
	}
	return c
}

func (c *Router) Execute(ctx context.Context, sessionID, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	if len(parts) != 1 {
		return "", false
	}
	name := strings.ToLower(strings.TrimPrefix(parts[0], "/"))

	cmd, ok := c.commands[name]
	if !ok {
		return "", false
	}

	result, err := cmd.Execute(ctx, sessionID, nil)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("command", name).Msg("local command failed")
		return fmt.Sprintf("Erreur : %v", err), true
	}
	return result, true
}

func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name() < res[j].Name() })
	return res
}
