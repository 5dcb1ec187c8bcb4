package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/causette/internal/service/history"
	"github.com/sandevgo/causette/internal/service/render"
	"github.com/sandevgo/causette/internal/service/ui"
	"github.com/sandevgo/causette/pkg/conv"
	"github.com/spf13/cobra"
)

var (
	exportHTML bool
	exportOut  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show, clear or export the stored conversation",
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a := newApp(ctx)
		defer a.close(ctx)

		out := cmd.OutOrStdout()
		for _, m := range a.history.LoadAll(ctx) {
			b := render.FromMessage(m)
			fmt.Fprintln(out, ui.Bubble(b, b.Text, 0))
			fmt.Fprintln(out)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a := newApp(ctx)
		defer a.close(ctx)

		if err := a.history.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Historique effacé.")
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversation as Markdown or HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a := newApp(ctx)
		defer a.close(ctx)

		transcript := history.Transcript(a.history.LoadAll(ctx))
		if exportHTML {
			transcript = conv.MarkdownToHTML([]byte(transcript))
		}

		var out io.Writer = cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			defer f.Close()
			out = f
		}

		_, err := io.WriteString(out, transcript)
		return err
	},
}

func init() {
	historyExportCmd.Flags().BoolVar(&exportHTML, "html", false, "render the transcript as HTML")
	historyExportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "write to file instead of stdout")

	historyCmd.AddCommand(historyShowCmd, historyClearCmd, historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
