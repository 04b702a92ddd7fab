package wallet_manager

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

var lamportsPerSol = decimal.NewFromInt(int64(solana.LAMPORTS_PER_SOL))

func uniqueKeys(keys []solana.PrivateKey) []solana.PrivateKey {
	var out []solana.PrivateKey
	for _, key := range keys {
		out = appendSignerIfNotPresented(out, key)
	}
	return out
}

func appendSignerIfNotPresented(signers []solana.PrivateKey, newSigner solana.PrivateKey) []solana.PrivateKey {
	for _, signer := range signers {
		if signer.PublicKey() == newSigner.PublicKey() {
			return signers
		}
	}
	return append(signers, newSigner)
}

func indexOf(keys []solana.PublicKey, key solana.PublicKey) int {
	for i, candidate := range keys {
		if candidate.Equals(key) {
			return i
		}
	}
	return -1
}

// LamportsToSol converts for display, rounded to 3 decimals.
func LamportsToSol(lamports uint64) decimal.Decimal {
	return lamportsDecimal(lamports).Div(lamportsPerSol).Round(3)
}

// SolFromLamports is the exact conversion, rounded to 9 decimals.
func SolFromLamports(lamports uint64) decimal.Decimal {
	return lamportsDecimal(lamports).Div(lamportsPerSol).Round(9)
}

// SolToLamports truncates anything below one lamport. Negative amounts give 0.
func SolToLamports(sol decimal.Decimal) uint64 {
	lamports := sol.Mul(lamportsPerSol).Truncate(0)
	if lamports.Sign() <= 0 {
		return 0
	}
	return lamports.BigInt().Uint64()
}

func lamportsDecimal(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), 0)
}
