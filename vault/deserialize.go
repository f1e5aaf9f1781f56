package vault

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/jito-foundation/restaking-go/borsh"
)

// DeserializeConfig decodes the raw data of a Config account. Fields are
// read in wire order with a forward-only cursor; data shorter than
// ConfigSize fails with borsh.ErrOutOfBounds at the first field that runs
// out of bytes, and trailing bytes beyond the fixed layout are ignored.
//
// The leading discriminator is stored on the result but not checked, so
// callers fetching accounts by anything other than the Config PDA should
// validate Config.Discriminator themselves.
func DeserializeConfig(data []byte) (*Config, error) {
	r := borsh.NewReader(data)
	c := &Config{}

	var err error
	if c.Discriminator, err = r.ReadU64(); err != nil {
		return nil, fmt.Errorf("discriminator: %w", err)
	}
	if c.Admin, err = readPubkey(r); err != nil {
		return nil, fmt.Errorf("admin: %w", err)
	}
	if c.RestakingProgram, err = readPubkey(r); err != nil {
		return nil, fmt.Errorf("restaking_program: %w", err)
	}
	if c.EpochLength, err = r.ReadU64(); err != nil {
		return nil, fmt.Errorf("epoch_length: %w", err)
	}
	if c.NumVaults, err = r.ReadU64(); err != nil {
		return nil, fmt.Errorf("num_vaults: %w", err)
	}
	if c.DepositWithdrawalFeeCapBps, err = r.ReadU16(); err != nil {
		return nil, fmt.Errorf("deposit_withdrawal_fee_cap_bps: %w", err)
	}
	if c.FeeRateOfChangeBps, err = r.ReadU16(); err != nil {
		return nil, fmt.Errorf("fee_rate_of_change_bps: %w", err)
	}
	if c.FeeBumpBps, err = r.ReadU16(); err != nil {
		return nil, fmt.Errorf("fee_bump_bps: %w", err)
	}
	if c.ProgramFeeBps, err = r.ReadU16(); err != nil {
		return nil, fmt.Errorf("program_fee_bps: %w", err)
	}
	if c.ProgramFeeWallet, err = readPubkey(r); err != nil {
		return nil, fmt.Errorf("program_fee_wallet: %w", err)
	}
	if c.FeeAdmin, err = readPubkey(r); err != nil {
		return nil, fmt.Errorf("fee_admin: %w", err)
	}
	if c.Bump, err = r.ReadU8(); err != nil {
		return nil, fmt.Errorf("bump: %w", err)
	}

	return c, nil
}

func readPubkey(r *borsh.Reader) (solana.PublicKey, error) {
	raw, err := r.ReadPubkey()
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKey(raw), nil
}
