package main

import (
	"fmt"

	"github.com/sandevgo/causette/internal/config"
	"github.com/sandevgo/causette/internal/service/installer"
	"github.com/sandevgo/causette/pkg/log"
	"github.com/spf13/cobra"
)

var (
	initDefaults bool
	initForce    bool
)

var initCmd = &cobra.Command{
	Use:          "init",
	Short:        "Write the configuration file",
	Long:         `Asks for the chat server, storage and voice settings and saves them to the .env of the runtime directory.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)

		// prefill from an existing .env
		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			logger.Warn().Err(err).Msg("ignoring unreadable .env")
		}

		appCfg, err := config.ParseAppConfig()
		if err != nil {
			return fmt.Errorf("failed to parse app config: %w", err)
		}
		speechCfg, err := config.ParseSpeechConfig()
		if err != nil {
			return fmt.Errorf("failed to parse speech config: %w", err)
		}
		state := installer.NewInstallState(appCfg, speechCfg)

		if initDefaults {
			path, err := installer.WriteEnv(state, initForce)
			if err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg("configuration saved")
			return nil
		}

		// run wizard (includes save step)
		if _, err := installer.RunWizard(state, initForce); err != nil {
			return err
		}

		logger.Info().Msgf("initialized runtime directory at: %s", appCfg.GetRuntimePath())
		logger.Info().Msg("Setup complete! You can now run 'causette'.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "write the current settings without asking")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing .env")
	rootCmd.AddCommand(initCmd)
}
