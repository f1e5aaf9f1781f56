// Package cli implements the restaking command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/jito-foundation/restaking-go/config"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

func Run() ExitCode {
	rootCmd := &cobra.Command{
		Use:   "restaking",
		Short: "CLI for the restaking and vault onchain programs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cmd.Help()
			if err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set debug logging level")

	var env string
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", config.EnvMainnetBeta, "The network environment to query (mainnet-beta, testnet, devnet, localnet)")

	rootCmd.AddCommand(
		NewVaultConfigCmd().Command(),
		NewRestakingConfigCmd().Command(),
	)

	if err := rootCmd.Execute(); err != nil {
		return exitCodeError
	}

	return exitCodeSuccess
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func rootFlags(cmd *cobra.Command) (env string, verbose bool, err error) {
	verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return "", false, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	env, err = cmd.Root().PersistentFlags().GetString("env")
	if err != nil {
		return "", false, fmt.Errorf("failed to get env flag: %w", err)
	}
	return env, verbose, nil
}
