package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jito-foundation/restaking-go/restaking"
)

type RestakingConfigCmd struct{}

func NewRestakingConfigCmd() *RestakingConfigCmd {
	return &RestakingConfigCmd{}
}

func (c *RestakingConfigCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "restaking-config",
		Short: "Fetch the restaking program's Config account",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, verbose, err := rootFlags(cmd)
			if err != nil {
				return err
			}
			log := newLogger(verbose)

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			client, err := restaking.NewForEnv(env)
			if err != nil {
				return err
			}

			addr, bump, _, err := restaking.FindConfigProgramAddress(client.ProgramID())
			if err != nil {
				return err
			}
			log.Debug("Fetching restaking config", "env", env, "program", client.ProgramID(), "pda", addr)

			cfg, err := client.GetConfig(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch restaking config: %w", err)
			}

			if cfg.Discriminator != restaking.ConfigDiscriminator {
				log.Warn("Unexpected config discriminator",
					"got", cfg.Discriminator, "want", restaking.ConfigDiscriminator)
			}

			renderKV([][]string{
				{"Address", addr.String()},
				{"Bump", fmt.Sprintf("%d", bump)},
				{"Admin", cfg.Admin.String()},
				{"Vault Program", cfg.VaultProgram.String()},
				{"NCN Count", fmt.Sprintf("%d", cfg.NcnCount)},
				{"Operator Count", fmt.Sprintf("%d", cfg.OperatorCount)},
				{"Epoch Length", fmt.Sprintf("%d", cfg.EpochLength)},
				{"Stored Bump", fmt.Sprintf("%d", cfg.Bump)},
			})
			return nil
		},
	}
}
