// Package restaking provides read-only access to the restaking program's
// on-chain accounts.
package restaking

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ConfigDiscriminator is the nominal discriminator of a Config account.
// DeserializeConfig does not enforce it.
const ConfigDiscriminator uint64 = 1

// ConfigSize is the minimum serialized size of a Config account.
const ConfigSize = 8 + 32 + 32 + 8 + 8 + 8 + 1

// Config is the restaking program's configuration account. Instances are
// immutable; they are only produced by DeserializeConfig.
type Config struct {
	// Discriminator is the raw 8-byte little-endian discriminator region
	// read from the account data. It is exposed, not validated.
	Discriminator uint64

	// Admin is the configuration admin.
	Admin solana.PublicKey
	// VaultProgram is the approved vault program.
	VaultProgram solana.PublicKey
	// NcnCount is the number of NCNs managed by the program.
	NcnCount uint64
	// OperatorCount is the number of operators managed by the program.
	OperatorCount uint64
	// EpochLength is the length of an epoch in slots.
	EpochLength uint64
	// Bump is the bump seed of the Config PDA.
	Bump uint8
}

func (c *Config) String() string {
	return fmt.Sprintf("Config(\n"+
		"  admin=%s,\n"+
		"  vault_program=%s,\n"+
		"  ncn_count=%d,\n"+
		"  operator_count=%d,\n"+
		"  epoch_length=%d,\n"+
		"  bump=%d,\n"+
		")",
		c.Admin, c.VaultProgram, c.NcnCount, c.OperatorCount,
		c.EpochLength, c.Bump)
}
