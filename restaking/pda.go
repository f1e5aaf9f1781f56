package restaking

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ErrDerivationExhausted is returned when no bump in the 0-255 range
// produces an off-curve address for the config seeds.
var ErrDerivationExhausted = errors.New("pda derivation exhausted")

var configSeed = []byte("config")

// ConfigSeeds returns the static seed sequence of the Config account.
func ConfigSeeds() [][]byte {
	return [][]byte{configSeed}
}

// FindConfigProgramAddress derives the canonical Config PDA under the given
// program. It returns the derived address, the accepted bump, and the exact
// seed sequence used (without the bump byte).
func FindConfigProgramAddress(programID solana.PublicKey) (solana.PublicKey, uint8, [][]byte, error) {
	seeds := ConfigSeeds()
	addr, bump, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, 0, nil, fmt.Errorf("%w: %v", ErrDerivationExhausted, err)
	}
	return addr, bump, seeds, nil
}
