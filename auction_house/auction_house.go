package auction_house

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"solana-edition-sale/compute_budget"
	"solana-edition-sale/core_auctions"
	"solana-edition-sale/wallet_manager"
)

func NewAuctionHouseActor(wm *wallet_manager.WalletManager) (*AuctionHouseActor, error) {
	if err := wm.Config.Validate(); err != nil {
		return nil, errors.Errorf("failed to create auction house actor. err: %s", err.Error())
	}
	return &AuctionHouseActor{
		Wm:         wm,
		NewEdition: solana.NewRandomPrivateKey,
	}, nil
}

func (aucHouse *AuctionHouseActor) AssembleInitEditionSale(params InitEditionSaleParams) (Assembly, error) {
	seller, err := ParseAddress("seller", params.Seller)
	if err != nil {
		return Assembly{}, err
	}
	collection, err := ParseAddress("collection", params.Collection)
	if err != nil {
		return Assembly{}, err
	}
	currencyMint, err := ParseAddress("currency mint", params.CurrencyMint)
	if err != nil {
		return Assembly{}, err
	}
	pdas, err := aucHouse.deriveCollectionAccounts(collection)
	if err != nil {
		return Assembly{}, err
	}
	instruction, err := core_auctions.NewInitEditionSaleInstructionBuilder(aucHouse.Wm.Config.ProgramID).
		SetPrice(params.Price).
		SetStartDate(params.StartDate).
		SetEndDate(params.EndDate).
		SetSellerAccount(seller).
		SetCollectionAccount(collection).
		SetEditionSaleConfigAccount(pdas.editionSaleConfig).
		SetCurrencyMintAccount(currencyMint).
		SetMasterEditionAuthorityAccount(pdas.masterEditionAuthority).
		Build()
	if err != nil {
		return Assembly{}, errors.Wrap(err, "failed to build init edition sale instruction")
	}
	return aucHouse.finalize(Assembly{
		FeePayer:     seller,
		Instructions: []solana.Instruction{instruction},
	})
}

func (aucHouse *AuctionHouseActor) AssembleBuyEdition(params BuyEditionParams) (Assembly, error) {
	collection, err := ParseAddress("collection", params.Collection)
	if err != nil {
		return Assembly{}, err
	}
	seller, err := ParseAddress("seller", params.Seller)
	if err != nil {
		return Assembly{}, err
	}
	buyer, err := ParseAddress("buyer", params.Buyer)
	if err != nil {
		return Assembly{}, err
	}
	currencyMint, err := ParseAddress("currency mint", params.CurrencyMint)
	if err != nil {
		return Assembly{}, err
	}
	pdas, err := aucHouse.deriveCollectionAccounts(collection)
	if err != nil {
		return Assembly{}, err
	}
	route, err := ResolvePaymentRoute(aucHouse.Wm.Config.NativeMint, currencyMint, buyer, seller)
	if err != nil {
		return Assembly{}, err
	}
	edition, err := aucHouse.NewEdition()
	if err != nil {
		return Assembly{}, errors.Wrap(err, "failed to generate edition key")
	}
	builder := core_auctions.NewBuyEditionInstructionBuilder(aucHouse.Wm.Config.ProgramID).
		SetCollectionAccount(collection).
		SetSellerAccount(seller).
		SetBuyerAccount(buyer).
		SetMasterEditionAuthorityAccount(pdas.masterEditionAuthority).
		SetEditionSaleConfigAccount(pdas.editionSaleConfig).
		SetEditionAccount(edition.PublicKey()).
		SetCurrencyMintAccount(currencyMint)
	route.apply(builder)
	instruction, err := builder.Build()
	if err != nil {
		return Assembly{}, errors.Wrap(err, "failed to build buy edition instruction")
	}
	return aucHouse.finalize(Assembly{
		FeePayer:     buyer,
		Instructions: []solana.Instruction{instruction},
		Signers:      []solana.PrivateKey{edition},
	})
}

func (aucHouse *AuctionHouseActor) finalize(assembly Assembly) (Assembly, error) {
	if !aucHouse.Wm.Config.EstimateComputeBudget {
		return assembly, nil
	}
	instructions, estimate, err := compute_budget.WithComputeUnitLimit(assembly.Instructions)
	if err != nil {
		return Assembly{}, err
	}
	assembly.Instructions = instructions
	assembly.Estimate = &estimate
	return assembly, nil
}

// CreateInitEditionSaleTransaction returns the base64 transaction the seller
// still has to sign.
func (aucHouse *AuctionHouseActor) CreateInitEditionSaleTransaction(ctx context.Context, params InitEditionSaleParams) (string, error) {
	assembly, err := aucHouse.AssembleInitEditionSale(params)
	if err != nil {
		return "", err
	}
	return aucHouse.serialize(ctx, assembly)
}

// CreateBuyEditionTransaction returns the base64 transaction signed by the
// new edition. The buyer still has to sign.
func (aucHouse *AuctionHouseActor) CreateBuyEditionTransaction(ctx context.Context, params BuyEditionParams) (string, error) {
	assembly, err := aucHouse.AssembleBuyEdition(params)
	if err != nil {
		return "", err
	}
	return aucHouse.serialize(ctx, assembly)
}

func (aucHouse *AuctionHouseActor) serialize(ctx context.Context, assembly Assembly) (string, error) {
	tx, err := aucHouse.Wm.BuildTransaction(ctx, assembly.FeePayer, assembly.Instructions)
	if err != nil {
		return "", err
	}
	if err := tx.Sign(assembly.Signers...); err != nil {
		return "", err
	}
	return tx.Serialize()
}

func (aucHouse *AuctionHouseActor) FetchEditionSaleConfig(ctx context.Context, collectionAddress string) (core_auctions.EditionSaleConfig, error) {
	collection, err := ParseAddress("collection", collectionAddress)
	if err != nil {
		return core_auctions.EditionSaleConfig{}, err
	}
	pdas, err := aucHouse.deriveCollectionAccounts(collection)
	if err != nil {
		return core_auctions.EditionSaleConfig{}, err
	}
	data, err := aucHouse.Wm.GetAccountData(ctx, pdas.editionSaleConfig)
	if err != nil {
		return core_auctions.EditionSaleConfig{}, err
	}
	return core_auctions.DecodeEditionSaleConfig(data)
}
