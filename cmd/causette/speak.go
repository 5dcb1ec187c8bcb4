package main

import (
	"os"
	"os/signal"
	"strings"

	"github.com/sandevgo/causette/internal/core"
	"github.com/sandevgo/causette/pkg/log"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:          "speak [text]",
	Short:        "Read a text aloud, or the last answer when no text is given",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		a := newApp(ctx)
		defer a.close(ctx)

		engine, ok := a.speaker.Available()
		if !ok {
			return core.ErrNoVoice
		}

		text := strings.Join(args, " ")
		if text == "" {
			messages := a.history.LoadAll(ctx)
			for i := len(messages) - 1; i >= 0; i-- {
				if messages[i].Sender == core.SenderBot {
					text = messages[i].Text
					break
				}
			}
		}
		if strings.TrimSpace(text) == "" {
			return core.ErrEmptyInput
		}

		log.FromCtx(ctx).Debug().Str("engine", engine).Msg("speaking")
		<-a.speaker.Speak(ctx, text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(speakCmd)
}
