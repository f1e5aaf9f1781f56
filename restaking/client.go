package restaking

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/jito-foundation/restaking-go/config"
)

// ErrAccountNotFound is returned when the requested account does not exist
// on the queried cluster.
var ErrAccountNotFound = errors.New("account not found")

// RPCClient is the minimal RPC interface needed by the client.
type RPCClient interface {
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error)
}

// Client provides read-only access to restaking program accounts.
type Client struct {
	rpc       RPCClient
	programID solana.PublicKey
}

// New creates a new restaking program client.
func New(rpc RPCClient, programID solana.PublicKey) *Client {
	return &Client{rpc: rpc, programID: programID}
}

// NewForEnv creates a client configured for the given environment.
// Valid environments: "mainnet-beta", "testnet", "devnet", "localnet".
func NewForEnv(env string) (*Client, error) {
	cfg, err := config.NetworkConfigForEnv(env)
	if err != nil {
		return nil, err
	}
	return New(NewRPCClient(cfg.RPCURL), cfg.RestakingProgramID), nil
}

// ProgramID returns the program ID this client is configured with.
func (c *Client) ProgramID() solana.PublicKey {
	return c.programID
}

// GetConfig fetches and deserializes the program's Config account at its
// canonical PDA.
func (c *Client) GetConfig(ctx context.Context) (*Config, error) {
	addr, _, _, err := FindConfigProgramAddress(c.programID)
	if err != nil {
		return nil, err
	}

	info, err := c.rpc.GetAccountInfo(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch config account %s: %w", addr, err)
	}
	if info == nil || info.Value == nil {
		return nil, ErrAccountNotFound
	}

	return DeserializeConfig(info.Value.Data.GetBinary())
}
