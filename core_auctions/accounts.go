package core_auctions

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

var ErrAccountDiscriminator = errors.New("account discriminator mismatch")

// EditionSaleConfig is the on-chain sale configuration of a collection.
// Dates are unix milliseconds.
type EditionSaleConfig struct {
	Collection   solana.PublicKey
	Seller       solana.PublicKey
	CurrencyMint solana.PublicKey
	Price        uint64
	StartDate    int64
	EndDate      int64
	Bump         uint8
}

func DecodeEditionSaleConfig(data []byte) (EditionSaleConfig, error) {
	var config EditionSaleConfig
	if len(data) < 8 || [8]byte(data[:8]) != EditionSaleConfigDiscriminator {
		return config, ErrAccountDiscriminator
	}
	if err := bin.NewBorshDecoder(data[8:]).Decode(&config); err != nil {
		return config, errors.Errorf("failed to decode edition sale config. err: %s", err.Error())
	}
	return config, nil
}

func EncodeEditionSaleConfig(config EditionSaleConfig) ([]byte, error) {
	return encodeWithDiscriminator(EditionSaleConfigDiscriminator, &config)
}
