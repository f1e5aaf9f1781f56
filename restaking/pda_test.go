package restaking_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/jito-foundation/restaking-go/config"
	"github.com/jito-foundation/restaking-go/restaking"
)

var testProgramID = solana.MustPublicKeyFromBase58(config.RestakingProgramID)

func TestConfigSeeds(t *testing.T) {
	seeds := restaking.ConfigSeeds()
	if len(seeds) != 1 {
		t.Fatalf("expected 1 seed, got %d", len(seeds))
	}
	if string(seeds[0]) != "config" {
		t.Errorf("expected seed %q, got %q", "config", seeds[0])
	}
}

func TestFindConfigProgramAddress(t *testing.T) {
	addr, bump, seeds, err := restaking.FindConfigProgramAddress(testProgramID)
	if err != nil {
		t.Fatalf("FindConfigProgramAddress: %v", err)
	}
	if addr.IsZero() {
		t.Error("derived zero address")
	}
	if len(seeds) != 1 || string(seeds[0]) != "config" {
		t.Errorf("unexpected seeds: %v", seeds)
	}

	addr2, bump2, _, err := restaking.FindConfigProgramAddress(testProgramID)
	if err != nil {
		t.Fatalf("FindConfigProgramAddress (2nd): %v", err)
	}
	if addr != addr2 || bump != bump2 {
		t.Error("PDA derivation not deterministic")
	}
}
