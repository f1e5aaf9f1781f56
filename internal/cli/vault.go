package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jito-foundation/restaking-go/vault"
)

type VaultConfigCmd struct{}

func NewVaultConfigCmd() *VaultConfigCmd {
	return &VaultConfigCmd{}
}

func (c *VaultConfigCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "vault-config",
		Short: "Fetch the vault program's Config account",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, verbose, err := rootFlags(cmd)
			if err != nil {
				return err
			}
			log := newLogger(verbose)

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			client, err := vault.NewForEnv(env)
			if err != nil {
				return err
			}

			addr, bump, _, err := vault.FindConfigProgramAddress(client.ProgramID())
			if err != nil {
				return err
			}
			log.Debug("Fetching vault config", "env", env, "program", client.ProgramID(), "pda", addr)

			cfg, err := client.GetConfig(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch vault config: %w", err)
			}

			if cfg.Discriminator != vault.ConfigDiscriminator {
				log.Warn("Unexpected config discriminator",
					"got", cfg.Discriminator, "want", vault.ConfigDiscriminator)
			}

			renderKV([][]string{
				{"Address", addr.String()},
				{"Bump", fmt.Sprintf("%d", bump)},
				{"Admin", cfg.Admin.String()},
				{"Restaking Program", cfg.RestakingProgram.String()},
				{"Epoch Length", fmt.Sprintf("%d", cfg.EpochLength)},
				{"Num Vaults", fmt.Sprintf("%d", cfg.NumVaults)},
				{"Deposit/Withdrawal Fee Cap (bps)", fmt.Sprintf("%d", cfg.DepositWithdrawalFeeCapBps)},
				{"Fee Rate of Change (bps)", fmt.Sprintf("%d", cfg.FeeRateOfChangeBps)},
				{"Fee Bump (bps)", fmt.Sprintf("%d", cfg.FeeBumpBps)},
				{"Program Fee (bps)", fmt.Sprintf("%d", cfg.ProgramFeeBps)},
				{"Program Fee Wallet", cfg.ProgramFeeWallet.String()},
				{"Fee Admin", cfg.FeeAdmin.String()},
				{"Stored Bump", fmt.Sprintf("%d", cfg.Bump)},
			})
			return nil
		},
	}
}

func renderKV(rows [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(true)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
