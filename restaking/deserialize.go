package restaking

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/jito-foundation/restaking-go/borsh"
)

// DeserializeConfig decodes the raw data of a Config account. Data shorter
// than ConfigSize fails with borsh.ErrOutOfBounds; trailing bytes are
// ignored. The leading discriminator is stored but not checked.
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
	if c.VaultProgram, err = readPubkey(r); err != nil {
		return nil, fmt.Errorf("vault_program: %w", err)
	}
	if c.NcnCount, err = r.ReadU64(); err != nil {
		return nil, fmt.Errorf("ncn_count: %w", err)
	}
	if c.OperatorCount, err = r.ReadU64(); err != nil {
		return nil, fmt.Errorf("operator_count: %w", err)
	}
	if c.EpochLength, err = r.ReadU64(); err != nil {
		return nil, fmt.Errorf("epoch_length: %w", err)
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
