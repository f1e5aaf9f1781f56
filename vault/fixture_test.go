package vault_test

import (
	"bytes"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/jito-foundation/restaking-go/vault"
)

// encodeConfig serializes a Config in the canonical account layout. The
// struct fields are declared in wire order, so a plain Borsh encoding of
// the value reproduces the on-chain byte layout exactly.
func encodeConfig(t *testing.T, c *vault.Config) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, bin.NewBorshEncoder(buf).Encode(c))
	require.Len(t, buf.Bytes(), vault.ConfigSize)
	return buf.Bytes()
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()

	expected := &vault.Config{
		Discriminator:              vault.ConfigDiscriminator,
		Admin:                      solana.NewWallet().PublicKey(),
		RestakingProgram:           solana.NewWallet().PublicKey(),
		EpochLength:                432_000,
		NumVaults:                  12,
		DepositWithdrawalFeeCapBps: 2_000,
		FeeRateOfChangeBps:         2_500,
		FeeBumpBps:                 10,
		ProgramFeeBps:              100,
		ProgramFeeWallet:           solana.NewWallet().PublicKey(),
		FeeAdmin:                   solana.NewWallet().PublicKey(),
		Bump:                       255,
	}

	got, err := vault.DeserializeConfig(encodeConfig(t, expected))
	require.NoError(t, err)
	require.Equal(t, expected, got)
}
