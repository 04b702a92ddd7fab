package core_auctions

import "github.com/gagliardetto/solana-go"

const (
	buyCollectionIdx = iota
	buySellerIdx
	buyBuyerIdx
	buyMasterEditionAuthorityIdx
	buyEditionSaleConfigIdx
	buyEditionIdx
	buyPaymentAccountIdx
	buySellerPaymentReceiptIdx
	buyCurrencyMintIdx
	buyTokenProgramIdx
	buyAssociatedTokenProgramIdx
	buySystemProgramIdx
	buyMplCoreProgramIdx
	buyAccountsCount
)

type BuyEditionInstructionBuilder struct {
	programID solana.PublicKey
	accounts  [buyAccountsCount]accountSlot
}

func NewBuyEditionInstructionBuilder(programID solana.PublicKey) *BuyEditionInstructionBuilder {
	b := &BuyEditionInstructionBuilder{programID: programID}
	names := [buyAccountsCount]string{
		"collection",
		"seller",
		"buyer",
		"masterEditionAuthority",
		"editionSaleConfig",
		"edition",
		"paymentAccount",
		"sellerPaymentReceipt",
		"currencyMint",
		"tokenProgram",
		"associatedTokenProgram",
		"systemProgram",
		"mplCoreProgram",
	}
	for i, name := range names {
		b.accounts[i].name = name
	}
	b.accounts[buySellerPaymentReceiptIdx].optional = true
	b.accounts[buyTokenProgramIdx].set(solana.TokenProgramID, false, false)
	b.accounts[buyAssociatedTokenProgramIdx].set(solana.SPLAssociatedTokenAccountProgramID, false, false)
	b.accounts[buySystemProgramIdx].set(solana.SystemProgramID, false, false)
	b.accounts[buyMplCoreProgramIdx].set(MplCoreProgramID, false, false)
	return b
}

func (b *BuyEditionInstructionBuilder) SetCollectionAccount(collection solana.PublicKey) *BuyEditionInstructionBuilder {
	b.accounts[buyCollectionIdx].set(collection, true, false)
	return b
}

func (b *BuyEditionInstructionBuilder) SetSellerAccount(seller solana.PublicKey) *BuyEditionInstructionBuilder {
	b.accounts[buySellerIdx].set(seller, true, false)
	return b
}

func (b *BuyEditionInstructionBuilder) SetBuyerAccount(buyer solana.PublicKey) *BuyEditionInstructionBuilder {
	b.accounts[buyBuyerIdx].set(buyer, true, true)
	return b
}

func (b *BuyEditionInstructionBuilder) SetMasterEditionAuthorityAccount(authority solana.PublicKey) *BuyEditionInstructionBuilder {
	b.accounts[buyMasterEditionAuthorityIdx].set(authority, false, false)
	return b
}

func (b *BuyEditionInstructionBuilder) SetEditionSaleConfigAccount(config solana.PublicKey) *BuyEditionInstructionBuilder {
	b.accounts[buyEditionSaleConfigIdx].set(config, true, false)
	return b
}

func (b *BuyEditionInstructionBuilder) SetEditionAccount(edition solana.PublicKey) *BuyEditionInstructionBuilder {
	b.accounts[buyEditionIdx].set(edition, true, true)
	return b
}

func (b *BuyEditionInstructionBuilder) SetPaymentAccountAccount(payment solana.PublicKey) *BuyEditionInstructionBuilder {
	b.accounts[buyPaymentAccountIdx].set(payment, true, false)
	return b
}

func (b *BuyEditionInstructionBuilder) SetSellerPaymentReceiptAccount(receipt solana.PublicKey) *BuyEditionInstructionBuilder {
	b.accounts[buySellerPaymentReceiptIdx].set(receipt, true, false)
	return b
}

func (b *BuyEditionInstructionBuilder) SetCurrencyMintAccount(mint solana.PublicKey) *BuyEditionInstructionBuilder {
	b.accounts[buyCurrencyMintIdx].set(mint, false, false)
	return b
}

func (b *BuyEditionInstructionBuilder) Validate() error {
	_, err := collectAccounts(b.programID, b.accounts[:])
	return err
}

func (b *BuyEditionInstructionBuilder) Build() (solana.Instruction, error) {
	accounts, err := collectAccounts(b.programID, b.accounts[:])
	if err != nil {
		return nil, err
	}
	data, err := encodeWithDiscriminator(BuyEditionDiscriminator, nil)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(b.programID, accounts, data), nil
}
