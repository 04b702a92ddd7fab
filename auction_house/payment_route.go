package auction_house

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"solana-edition-sale/core_auctions"
)

type RouteKind int

const (
	RouteNative RouteKind = iota
	RouteToken
)

func (k RouteKind) String() string {
	switch k {
	case RouteNative:
		return "native"
	case RouteToken:
		return "token"
	default:
		return "unknown"
	}
}

// PaymentRoute is where the buyer pays from and, for token payments, which
// account of the seller receives the funds.
type PaymentRoute struct {
	kind           RouteKind
	paymentAccount solana.PublicKey
	sellerReceipt  solana.PublicKey
}

func NativeRoute(buyer solana.PublicKey) PaymentRoute {
	return PaymentRoute{kind: RouteNative, paymentAccount: buyer}
}

func TokenRoute(buyerTokenAccount, sellerTokenAccount solana.PublicKey) PaymentRoute {
	return PaymentRoute{
		kind:           RouteToken,
		paymentAccount: buyerTokenAccount,
		sellerReceipt:  sellerTokenAccount,
	}
}

func (r PaymentRoute) Kind() RouteKind {
	return r.kind
}

func (r PaymentRoute) PaymentAccount() solana.PublicKey {
	return r.paymentAccount
}

// SellerPaymentReceipt reports false for native payments.
func (r PaymentRoute) SellerPaymentReceipt() (solana.PublicKey, bool) {
	return r.sellerReceipt, r.kind == RouteToken
}

func (r PaymentRoute) apply(builder *core_auctions.BuyEditionInstructionBuilder) {
	builder.SetPaymentAccountAccount(r.paymentAccount)
	if receipt, ok := r.SellerPaymentReceipt(); ok {
		builder.SetSellerPaymentReceiptAccount(receipt)
	}
}

// ResolvePaymentRoute does not check that the token accounts exist.
func ResolvePaymentRoute(nativeMint, currencyMint, buyer, seller solana.PublicKey) (PaymentRoute, error) {
	if currencyMint.IsZero() {
		return PaymentRoute{}, errors.Wrap(ErrAccountResolution, "currency mint is not set")
	}
	if currencyMint.Equals(nativeMint) {
		return NativeRoute(buyer), nil
	}
	buyerTokenAccount, err := DeriveTokenAccount(currencyMint, buyer)
	if err != nil {
		return PaymentRoute{}, err
	}
	sellerTokenAccount, err := DeriveTokenAccount(currencyMint, seller)
	if err != nil {
		return PaymentRoute{}, err
	}
	return TokenRoute(buyerTokenAccount, sellerTokenAccount), nil
}
