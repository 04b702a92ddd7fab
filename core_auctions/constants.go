package core_auctions

import (
	"crypto/sha256"

	"github.com/gagliardetto/solana-go"
)

var (
	editionSaleConfigSeed      = "edition_sale_config"
	masterEditionAuthoritySeed = "master_edition_authority"

	MplCoreProgramID = solana.MustPublicKeyFromBase58("CoREENxT6tW1HoK8ypY1SxRMZTcVPm7R94rH4PZNhX7d")

	InitEditionSaleDiscriminator   = instructionDiscriminator("init_edition_sale")
	BuyEditionDiscriminator        = instructionDiscriminator("buy_edition")
	EditionSaleConfigDiscriminator = accountDiscriminator("EditionSaleConfig")
)

func instructionDiscriminator(name string) [8]byte {
	return discriminator("global:" + name)
}

func accountDiscriminator(name string) [8]byte {
	return discriminator("account:" + name)
}

// discriminator is the first 8 bytes of sha256(preimage), the anchor layout
// used to tag both instruction data and account data.
func discriminator(preimage string) [8]byte {
	hash := sha256.Sum256([]byte(preimage))
	var disc [8]byte
	copy(disc[:], hash[:8])
	return disc
}
