package vault_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/require"

	"github.com/jito-foundation/restaking-go/borsh"
	"github.com/jito-foundation/restaking-go/vault"
)

type mockRPCClient struct {
	GetAccountInfoFunc func(context.Context, solana.PublicKey) (*solanarpc.GetAccountInfoResult, error)
}

func (m *mockRPCClient) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
	return m.GetAccountInfoFunc(ctx, account)
}

func TestClient_GetConfig_HappyPath(t *testing.T) {
	t.Parallel()

	expected := &vault.Config{
		Discriminator:    vault.ConfigDiscriminator,
		Admin:            solana.NewWallet().PublicKey(),
		RestakingProgram: solana.NewWallet().PublicKey(),
		EpochLength:      432_000,
		NumVaults:        3,
		ProgramFeeBps:    100,
		ProgramFeeWallet: solana.NewWallet().PublicKey(),
		FeeAdmin:         solana.NewWallet().PublicKey(),
		Bump:             254,
	}
	data := encodeConfig(t, expected)

	configPDA, _, _, err := vault.FindConfigProgramAddress(testProgramID)
	require.NoError(t, err)

	mockRPC := &mockRPCClient{
		GetAccountInfoFunc: func(_ context.Context, account solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
			require.Equal(t, configPDA, account)
			return &solanarpc.GetAccountInfoResult{
				Value: &solanarpc.Account{
					Data: solanarpc.DataBytesOrJSONFromBytes(data),
				},
			}, nil
		},
	}

	client := vault.New(mockRPC, testProgramID)
	require.Equal(t, testProgramID, client.ProgramID())

	got, err := client.GetConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestClient_GetConfig_NotFound(t *testing.T) {
	t.Parallel()

	mockRPC := &mockRPCClient{
		GetAccountInfoFunc: func(context.Context, solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
			return &solanarpc.GetAccountInfoResult{Value: nil}, nil
		},
	}

	client := vault.New(mockRPC, testProgramID)
	_, err := client.GetConfig(context.Background())
	require.ErrorIs(t, err, vault.ErrAccountNotFound)
}

func TestClient_GetConfig_RPCError(t *testing.T) {
	t.Parallel()

	rpcErr := errors.New("rpc unavailable")
	mockRPC := &mockRPCClient{
		GetAccountInfoFunc: func(context.Context, solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
			return nil, rpcErr
		},
	}

	client := vault.New(mockRPC, testProgramID)
	_, err := client.GetConfig(context.Background())
	require.ErrorIs(t, err, rpcErr)
}

func TestClient_GetConfig_ShortAccountData(t *testing.T) {
	t.Parallel()

	mockRPC := &mockRPCClient{
		GetAccountInfoFunc: func(context.Context, solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
			return &solanarpc.GetAccountInfoResult{
				Value: &solanarpc.Account{
					Data: solanarpc.DataBytesOrJSONFromBytes(make([]byte, vault.ConfigSize-1)),
				},
			}, nil
		},
	}

	client := vault.New(mockRPC, testProgramID)
	_, err := client.GetConfig(context.Background())
	require.ErrorIs(t, err, borsh.ErrOutOfBounds)
}
