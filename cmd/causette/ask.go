package main

import (
	"os"
	"os/signal"
	"strings"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/internal/service/session"
	"github.com/sandevgo/causette/internal/transport/cli"
	"github.com/sandevgo/causette/pkg/log"
	"github.com/spf13/cobra"
)

var askSpeak bool

var askCmd = &cobra.Command{
	Use:          "ask <question>",
	Short:        "Ask a single question and print the answer",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		a := newApp(ctx)
		defer a.close(ctx)

		// No display delays for a one-shot question
		cfg := *a.appCfg
		cfg.DisplayDelay, cfg.FadeDelay, cfg.TypewriterSpeed = 0, 0, 0

		// Keep the stored conversation so the exchange is appended to it
		a.history.LoadAll(ctx)

		sess := session.New(cfg, a.client, a.history, a.modes, cli.NewLinePresenter(os.Stdout, 0))
		out, err := sess.Submit(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if out.StorageErr != nil {
			log.FromCtx(ctx).Warn().Err(out.StorageErr).Msg("exchange not saved")
		}

		if askSpeak && out.Reply != nil {
			if _, ok := a.speaker.Available(); !ok {
				return core.ErrNoVoice
			}
			<-a.speaker.Speak(ctx, out.Reply.Text)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVarP(&askSpeak, "speak", "s", false, "read the answer aloud")
	rootCmd.AddCommand(askCmd)
}
