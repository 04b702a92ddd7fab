package auction_house

import (
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"solana-edition-sale/core_auctions"
)

func ParseAddress(field, address string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(strings.TrimSpace(address))
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(ErrInvalidAddress, "%s %q: %s", field, address, err.Error())
	}
	return key, nil
}

func DeriveTokenAccount(mint, owner solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(
			ErrAccountResolution,
			"token account of %s for mint %s: %s",
			owner.String(),
			mint.String(),
			err.Error(),
		)
	}
	return addr, nil
}

type collectionAccounts struct {
	editionSaleConfig      solana.PublicKey
	masterEditionAuthority solana.PublicKey
}

func (aucHouse *AuctionHouseActor) deriveCollectionAccounts(collection solana.PublicKey) (collectionAccounts, error) {
	programID := aucHouse.Wm.Config.ProgramID
	config, _, err := core_auctions.FindEditionSaleConfigPda(programID, collection)
	if err != nil {
		return collectionAccounts{}, errors.Wrapf(ErrAccountResolution, "edition sale config: %s", err.Error())
	}
	authority, _, err := core_auctions.FindMasterEditionAuthorityPda(programID, collection)
	if err != nil {
		return collectionAccounts{}, errors.Wrapf(ErrAccountResolution, "master edition authority: %s", err.Error())
	}
	return collectionAccounts{
		editionSaleConfig:      config,
		masterEditionAuthority: authority,
	}, nil
}
