package auction_house

import (
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"solana-edition-sale/compute_budget"
	"solana-edition-sale/wallet_manager"
)

var (
	ErrInvalidAddress    = errors.New("invalid address")
	ErrAccountResolution = errors.New("failed to resolve accounts")
)

type AuctionHouseActor struct {
	Wm *wallet_manager.WalletManager
	// NewEdition generates the key of the edition minted by a purchase.
	NewEdition func() (solana.PrivateKey, error)
}

type InitEditionSaleParams struct {
	Seller       string
	Collection   string
	CurrencyMint string
	Price        uint64
	StartDate    time.Time
	EndDate      time.Time
}

type BuyEditionParams struct {
	Collection   string
	Seller       string
	Buyer        string
	CurrencyMint string
}

// Assembly is an ordered instruction set ready to be put into a transaction.
// Signers are the keys the actor generated itself; the fee payer always signs
// later.
type Assembly struct {
	FeePayer     solana.PublicKey
	Instructions []solana.Instruction
	Signers      []solana.PrivateKey
	Estimate     *compute_budget.Estimate
}
