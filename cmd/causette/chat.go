package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/causette/internal/service/session"
	"github.com/sandevgo/causette/internal/transport/cli"
	"github.com/sandevgo/causette/internal/transport/tui"
	"github.com/sandevgo/causette/pkg/log"
	"github.com/sandevgo/causette/pkg/srv"
	"github.com/spf13/cobra"
)

var plainMode bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat window",
	Long:  `Opens the full-screen chat. With --plain the conversation runs as scrolling lines instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, plainMode)
	},
}

func init() {
	chatCmd.Flags().BoolVar(&plainMode, "plain", false, "line mode instead of the full-screen window")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, plain bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// The full-screen window owns the terminal, so it logs to a file
	var flushLog func()
	if plain {
		ctx, flushLog = setupLogger(ctx)
	} else {
		ctx, flushLog = setupFileLogger(ctx)
	}
	defer flushLog()

	logger := log.FromCtx(ctx)
	logger.Info().Msg("starting causette")

	a := newApp(ctx)
	services := append([]srv.Service{}, a.cleanup...)

	if plain {
		presenter := cli.NewLinePresenter(os.Stdout, a.appCfg.GetTypewriterSpeed())
		sess := session.New(a.appCfg, a.client, a.history, a.modes, presenter)

		rl, err := cli.NewReadLine(sess, a.speaker, presenter, a.appCfg.GetRuntimePath())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize line mode")
		}
		services = append(services, rl)
	} else {
		presenter := tui.NewPresenter()
		sess := session.New(a.appCfg, a.client, a.history, a.modes, presenter)
		services = append(services, tui.NewService(sess, a.speaker, presenter, a.appCfg.GetTypewriterSpeed()))
	}

	// Start services; the chat surface stops everything when it returns
	srv.StartServices(ctx, stop, services)

	// Wait for shutdown
	srv.ShutdownServices(ctx, services)
	logger.Info().Msg("causette has been shut down gracefully")

	return nil
}
