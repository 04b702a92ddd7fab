package wallet_manager

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func NewWalletManager(client RPCClient, config Config) *WalletManager {
	return NewWalletManagerWithOpts(client, config, zap.NewNop())
}

func NewWalletManagerWithOpts(client RPCClient, config Config, logger *zap.Logger) *WalletManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WalletManager{
		Client: client,
		Config: config,
		Logger: logger,
	}
}

// Dial validates the config and connects to its rpc endpoint.
func Dial(config Config, logger *zap.Logger) (*WalletManager, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return NewWalletManagerWithOpts(rpc.New(config.RPCEndpoint), config, logger), nil
}

func (wm *WalletManager) RecentBlockhash(ctx context.Context) (solana.Hash, error) {
	recent, err := wm.Client.GetLatestBlockhash(ctx, wm.Config.Commitment)
	if err != nil {
		return solana.Hash{}, errors.Errorf("failed to get latest blockhash. err: %s", err.Error())
	}
	if recent == nil || recent.Value == nil {
		return solana.Hash{}, errors.New("failed to get latest blockhash. err: empty response")
	}
	return recent.Value.Blockhash, nil
}

// BuildTransaction assembles the instructions, in order, into a transaction
// paid by feePayer. Every required signature starts out as a placeholder.
func (wm *WalletManager) BuildTransaction(
	ctx context.Context,
	feePayer solana.PublicKey,
	instructions []solana.Instruction,
) (*UnsignedTransaction, error) {
	if len(instructions) == 0 {
		return nil, errors.Wrap(ErrSerialization, "instruction set is empty")
	}
	blockhash, err := wm.RecentBlockhash(ctx)
	if err != nil {
		return nil, err
	}
	return NewUnsignedTransaction(feePayer, blockhash, instructions, wm.Logger)
}

func (wm *WalletManager) GetAccountData(ctx context.Context, account solana.PublicKey) ([]byte, error) {
	result, err := wm.Client.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{
		Commitment: wm.Config.Commitment,
	})
	if err != nil {
		return nil, errors.Errorf("failed to get account info of %s. err: %s", account.String(), err.Error())
	}
	if result == nil || result.Value == nil || result.Value.Data == nil {
		return nil, errors.Errorf("account %s not found", account.String())
	}
	return result.Value.Data.GetBinary(), nil
}
