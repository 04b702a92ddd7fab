package candy_machine

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrDivisionByZero = errors.New("public group mint price is zero")

type WhiteListType string

const (
	WhiteListTypePublic          WhiteListType = "Public"
	WhiteListTypeUser            WhiteListType = "User"
	WhiteListTypeWallet          WhiteListType = "WalletWhiteList"
	WhiteListTypeUserWhiteList   WhiteListType = "UserWhiteList"
	WhiteListTypeCollectionOwner WhiteListType = "CollectionOwner"
)

// GroupSettings is one pricing group of a candy machine. MintPrice is in the
// smallest unit of SplTokenAddress.
type GroupSettings struct {
	Label           string
	WhiteListType   WhiteListType
	SplTokenAddress string
	MintPrice       uint64
}

// FindDiscount returns the percentage the User group saves relative to the
// Public group paying with the same token, e.g. 20 for 100 vs 80.
func FindDiscount(groups []GroupSettings) (decimal.Decimal, error) {
	var public, user *GroupSettings
	for i := range groups {
		if groups[i].WhiteListType == WhiteListTypePublic {
			public = &groups[i]
			break
		}
	}
	if public == nil {
		return decimal.Zero, nil
	}
	for i := range groups {
		if groups[i].WhiteListType == WhiteListTypeUser && groups[i].SplTokenAddress == public.SplTokenAddress {
			user = &groups[i]
			break
		}
	}
	if user == nil {
		return decimal.Zero, nil
	}
	if public.MintPrice == 0 {
		return decimal.Zero, errors.Wrapf(ErrDivisionByZero, "group %q", public.Label)
	}
	publicPrice := priceDecimal(public.MintPrice)
	difference := publicPrice.Sub(priceDecimal(user.MintPrice)).Abs().Mul(decimal.NewFromInt(100))
	return difference.Div(publicPrice), nil
}

func priceDecimal(price uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(price), 0)
}
