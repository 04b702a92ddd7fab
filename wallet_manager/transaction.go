package wallet_manager

import (
	"encoding/base64"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// MaxAccountsPerTransaction is the runtime account lock limit.
	MaxAccountsPerTransaction = 64
	// MaxTransactionSize is the network packet size.
	MaxTransactionSize = 1232
)

var ErrSerialization = errors.New("transaction serialization failed")

// UnsignedTransaction is a built transaction waiting for its signatures.
// Slots of signers that never sign keep a zero signature so the transaction
// can be handed to the missing signer.
type UnsignedTransaction struct {
	tx     *solana.Transaction
	logger *zap.Logger
}

func NewUnsignedTransaction(
	feePayer solana.PublicKey,
	blockhash solana.Hash,
	instructions []solana.Instruction,
	logger *zap.Logger,
) (*UnsignedTransaction, error) {
	if len(instructions) == 0 {
		return nil, errors.Wrap(ErrSerialization, "instruction set is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	txBuilder := solana.NewTransactionBuilder().
		SetRecentBlockHash(blockhash).
		SetFeePayer(feePayer)
	for _, instruction := range instructions {
		txBuilder.AddInstruction(instruction)
	}
	tx, err := txBuilder.Build()
	if err != nil {
		return nil, errors.Wrapf(ErrSerialization, "failed to build transaction: %s", err.Error())
	}
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)
	logger.Debug("built transaction",
		zap.Stringer("feePayer", feePayer),
		zap.Stringer("blockhash", blockhash),
		zap.Int("instructions", len(instructions)),
		zap.Int("accounts", len(tx.Message.AccountKeys)),
	)
	return &UnsignedTransaction{tx: tx, logger: logger}, nil
}

func (u *UnsignedTransaction) RequiredSigners() []solana.PublicKey {
	n := int(u.tx.Message.Header.NumRequiredSignatures)
	signers := make([]solana.PublicKey, n)
	copy(signers, u.tx.Message.AccountKeys[:n])
	return signers
}

// Sign signs the slots of the given keys and leaves the rest untouched.
func (u *UnsignedTransaction) Sign(keys ...solana.PrivateKey) error {
	payload, err := u.tx.Message.MarshalBinary()
	if err != nil {
		return errors.Wrapf(ErrSerialization, "failed to marshal message: %s", err.Error())
	}
	signers := u.RequiredSigners()
	for _, key := range uniqueKeys(keys) {
		idx := indexOf(signers, key.PublicKey())
		if idx < 0 {
			return errors.Errorf("%s is not a required signer", key.PublicKey().String())
		}
		sig, err := key.Sign(payload)
		if err != nil {
			return errors.Errorf("failed to sign with %s. err: %s", key.PublicKey().String(), err.Error())
		}
		u.tx.Signatures[idx] = sig
		u.logger.Debug("signed transaction", zap.Stringer("signer", key.PublicKey()))
	}
	return nil
}

// PendingSigners are the required signers whose slot is still a placeholder.
func (u *UnsignedTransaction) PendingSigners() []solana.PublicKey {
	var pending []solana.PublicKey
	for i, signer := range u.RequiredSigners() {
		if u.tx.Signatures[i] == (solana.Signature{}) {
			pending = append(pending, signer)
		}
	}
	return pending
}

func (u *UnsignedTransaction) Transaction() *solana.Transaction {
	return u.tx
}

func (u *UnsignedTransaction) MarshalBinary() ([]byte, error) {
	if len(u.tx.Message.Instructions) == 0 {
		return nil, errors.Wrap(ErrSerialization, "instruction set is empty")
	}
	if n := len(u.tx.Message.AccountKeys); n > MaxAccountsPerTransaction {
		return nil, errors.Wrapf(ErrSerialization, "%d accounts exceed the limit of %d", n, MaxAccountsPerTransaction)
	}
	raw, err := u.tx.MarshalBinary()
	if err != nil {
		return nil, errors.Wrapf(ErrSerialization, "failed to marshal transaction: %s", err.Error())
	}
	if len(raw) > MaxTransactionSize {
		return nil, errors.Wrapf(ErrSerialization, "%d bytes exceed the limit of %d", len(raw), MaxTransactionSize)
	}
	return raw, nil
}

// Serialize returns the base64 wire encoding of the transaction.
func (u *UnsignedTransaction) Serialize() (string, error) {
	raw, err := u.MarshalBinary()
	if err != nil {
		return "", err
	}
	u.logger.Debug("serialized transaction",
		zap.Int("bytes", len(raw)),
		zap.Int("pendingSigners", len(u.PendingSigners())),
	)
	return base64.StdEncoding.EncodeToString(raw), nil
}

func DecodeTransaction(encoded string) (*solana.Transaction, error) {
	tx := new(solana.Transaction)
	if err := tx.UnmarshalBase64(encoded); err != nil {
		return nil, errors.Errorf("failed to decode transaction. err: %s", err.Error())
	}
	return tx, nil
}
