// Package vault provides read-only access to the vault program's on-chain
// accounts: fixed-layout deserialization and PDA derivation.
package vault

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ConfigDiscriminator is the nominal discriminator of a Config account.
// DeserializeConfig does not enforce it; callers that pull accounts from an
// untrusted source should compare Config.Discriminator against it.
const ConfigDiscriminator uint64 = 1

// ConfigSize is the minimum serialized size of a Config account:
// an 8-byte discriminator followed by the fixed field layout.
const ConfigSize = 8 + 32 + 32 + 8 + 8 + 2 + 2 + 2 + 2 + 32 + 32 + 1

// Config is the vault program's configuration account. It manages
// program-wide settings and state. Instances are immutable; they are only
// produced by DeserializeConfig.
type Config struct {
	// Discriminator is the raw 8-byte little-endian discriminator region
	// read from the account data. It is exposed, not validated.
	Discriminator uint64

	// Admin is the configuration admin.
	Admin solana.PublicKey
	// RestakingProgram is the approved restaking program for this vault
	// program.
	RestakingProgram solana.PublicKey
	// EpochLength is the length of an epoch in slots.
	EpochLength uint64
	// NumVaults is the number of vaults managed by the program.
	NumVaults uint64
	// DepositWithdrawalFeeCapBps caps deposit and withdrawal fees, in
	// basis points.
	DepositWithdrawalFeeCapBps uint16
	// FeeRateOfChangeBps is the maximum amount a fee can increase per
	// epoch, in basis points.
	FeeRateOfChangeBps uint16
	// FeeBumpBps is the amount a fee can increase above the rate of
	// change, in basis points.
	FeeBumpBps uint16
	// ProgramFeeBps is the program fee in basis points.
	ProgramFeeBps uint16
	// ProgramFeeWallet receives the program fee.
	ProgramFeeWallet solana.PublicKey
	// FeeAdmin is the admin for the fee account.
	FeeAdmin solana.PublicKey
	// Bump is the bump seed of the Config PDA.
	Bump uint8
}

func (c *Config) String() string {
	return fmt.Sprintf("Config(\n"+
		"  admin=%s,\n"+
		"  restaking_program=%s,\n"+
		"  epoch_length=%d,\n"+
		"  num_vaults=%d,\n"+
		"  deposit_withdrawal_fee_cap_bps=%d,\n"+
		"  fee_rate_of_change_bps=%d,\n"+
		"  fee_bump_bps=%d,\n"+
		"  program_fee_bps=%d,\n"+
		"  program_fee_wallet=%s,\n"+
		"  fee_admin=%s,\n"+
		"  bump=%d,\n"+
		")",
		c.Admin, c.RestakingProgram, c.EpochLength, c.NumVaults,
		c.DepositWithdrawalFeeCapBps, c.FeeRateOfChangeBps, c.FeeBumpBps,
		c.ProgramFeeBps, c.ProgramFeeWallet, c.FeeAdmin, c.Bump)
}
