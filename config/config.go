// Package config holds the per-environment settings for the restaking and
// vault programs: program IDs and default RPC endpoints.
package config

import (
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
)

const (
	EnvMainnetBeta = "mainnet-beta"
	EnvMainnet     = "mainnet"
	EnvTestnet     = "testnet"
	EnvDevnet      = "devnet"
	EnvLocalnet    = "localnet"
)

const (
	// The restaking and vault programs are deployed at the same vanity
	// addresses on every cluster.
	RestakingProgramID = "RestkWeAVL8fRGgR789NnnMiYVVXv8kyoqJcZZwMVBf"
	VaultProgramID     = "Vau1t6sLNxnzB7ZDsef8TLbPLfyZMYXH8WTNqUdm9g8"

	MainnetRPCURL  = "https://api.mainnet-beta.solana.com"
	TestnetRPCURL  = "https://api.testnet.solana.com"
	DevnetRPCURL   = "https://api.devnet.solana.com"
	LocalnetRPCURL = "http://localhost:8899"
)

// NetworkConfig is the resolved configuration for one environment.
type NetworkConfig struct {
	Moniker            string
	RPCURL             string
	RestakingProgramID solana.PublicKey
	VaultProgramID     solana.PublicKey
}

// NetworkConfigForEnv resolves the configuration for the given environment.
// The RPC URL can be overridden with the RESTAKING_RPC_URL environment
// variable.
func NetworkConfigForEnv(env string) (*NetworkConfig, error) {
	restakingProgramID, err := solana.PublicKeyFromBase58(RestakingProgramID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse restaking program ID: %w", err)
	}
	vaultProgramID, err := solana.PublicKeyFromBase58(VaultProgramID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vault program ID: %w", err)
	}

	config := &NetworkConfig{
		RestakingProgramID: restakingProgramID,
		VaultProgramID:     vaultProgramID,
	}
	switch env {
	case EnvMainnetBeta, EnvMainnet:
		config.Moniker = EnvMainnetBeta
		config.RPCURL = MainnetRPCURL
	case EnvTestnet:
		config.Moniker = EnvTestnet
		config.RPCURL = TestnetRPCURL
	case EnvDevnet:
		config.Moniker = EnvDevnet
		config.RPCURL = DevnetRPCURL
	case EnvLocalnet:
		config.Moniker = EnvLocalnet
		config.RPCURL = LocalnetRPCURL
	default:
		// We intentionally do not include localnet in the error message.
		return nil, fmt.Errorf("invalid environment %q, must be one of: %s, %s, %s", env, EnvMainnetBeta, EnvTestnet, EnvDevnet)
	}

	rpcURL := os.Getenv("RESTAKING_RPC_URL")
	if rpcURL != "" {
		config.RPCURL = rpcURL
	}

	return config, nil
}
