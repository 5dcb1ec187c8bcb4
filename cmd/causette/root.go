package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/causette/internal/config"
	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/ui"
	"github.com/sandevgo/causette/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:     "causette",
	Short:   "Causette — terminal client for the question/answer chat server",
	Long:    `Causette talks to the chat server, renders its answers, keeps the conversation and reads replies aloud.`,
	Version: core.CausetteVersion,
	// Without a subcommand, open the chat
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, false)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	CustomizeHelp(rootCmd)
}

func isDebug() bool {
	return debug || config.IsDebug()
}

// setupLogger logs to stderr, keeping stdout for command output.
func setupLogger(ctx context.Context) (context.Context, func()) {
	return log.NewContextWithLogger(ctx, isDebug(), os.Stderr)
}

// setupFileLogger is used by surfaces that own the terminal.
func setupFileLogger(ctx context.Context) (context.Context, func()) {
	runtimePath := config.GetRuntimePath()
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create runtime directory: %v\n", err)
		return log.NewContextWithLogger(ctx, isDebug(), io.Discard)
	}

	ctx, flush, err := log.NewFileLogger(ctx, isDebug(), config.LogPath(runtimePath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return log.NewContextWithLogger(ctx, isDebug(), io.Discard)
	}
	return ctx, flush
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces | StyleFlag}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
