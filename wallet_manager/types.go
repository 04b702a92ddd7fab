package wallet_manager

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// RPCClient is the part of *rpc.Client the manager reads from.
type RPCClient interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
}

type WalletManager struct {
	Client RPCClient
	Config Config
	Logger *zap.Logger
}

type Config struct {
	RPCEndpoint string
	// ProgramID is the core auctions program.
	ProgramID solana.PublicKey
	// NativeMint marks payments in the native currency; no token accounts
	// are involved for it.
	NativeMint            solana.PublicKey
	Commitment            rpc.CommitmentType
	EstimateComputeBudget bool
}
