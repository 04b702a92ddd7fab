package core_auctions

import (
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// InitEditionSaleArgs are the borsh encoded arguments of init_edition_sale.
// Dates are unix milliseconds.
type InitEditionSaleArgs struct {
	Price     uint64
	StartDate int64
	EndDate   int64
}

const (
	initSellerIdx = iota
	initCollectionIdx
	initEditionSaleConfigIdx
	initCurrencyMintIdx
	initMasterEditionAuthorityIdx
	initSystemProgramIdx
	initAccountsCount
)

type InitEditionSaleInstructionBuilder struct {
	programID solana.PublicKey
	args      InitEditionSaleArgs
	accounts  [initAccountsCount]accountSlot
}

func NewInitEditionSaleInstructionBuilder(programID solana.PublicKey) *InitEditionSaleInstructionBuilder {
	b := &InitEditionSaleInstructionBuilder{programID: programID}
	b.accounts[initSellerIdx].name = "seller"
	b.accounts[initCollectionIdx].name = "collection"
	b.accounts[initEditionSaleConfigIdx].name = "editionSaleConfig"
	b.accounts[initCurrencyMintIdx].name = "currencyMint"
	b.accounts[initMasterEditionAuthorityIdx].name = "masterEditionAuthority"
	b.accounts[initSystemProgramIdx].name = "systemProgram"
	return b.SetSystemProgramAccount(solana.SystemProgramID)
}

func (b *InitEditionSaleInstructionBuilder) SetPrice(price uint64) *InitEditionSaleInstructionBuilder {
	b.args.Price = price
	return b
}

func (b *InitEditionSaleInstructionBuilder) SetStartDate(start time.Time) *InitEditionSaleInstructionBuilder {
	b.args.StartDate = start.UnixMilli()
	return b
}

func (b *InitEditionSaleInstructionBuilder) SetEndDate(end time.Time) *InitEditionSaleInstructionBuilder {
	b.args.EndDate = end.UnixMilli()
	return b
}

func (b *InitEditionSaleInstructionBuilder) SetSellerAccount(seller solana.PublicKey) *InitEditionSaleInstructionBuilder {
	b.accounts[initSellerIdx].set(seller, true, true)
	return b
}

func (b *InitEditionSaleInstructionBuilder) SetCollectionAccount(collection solana.PublicKey) *InitEditionSaleInstructionBuilder {
	b.accounts[initCollectionIdx].set(collection, true, false)
	return b
}

func (b *InitEditionSaleInstructionBuilder) SetEditionSaleConfigAccount(config solana.PublicKey) *InitEditionSaleInstructionBuilder {
	b.accounts[initEditionSaleConfigIdx].set(config, true, false)
	return b
}

func (b *InitEditionSaleInstructionBuilder) SetCurrencyMintAccount(mint solana.PublicKey) *InitEditionSaleInstructionBuilder {
	b.accounts[initCurrencyMintIdx].set(mint, false, false)
	return b
}

func (b *InitEditionSaleInstructionBuilder) SetMasterEditionAuthorityAccount(authority solana.PublicKey) *InitEditionSaleInstructionBuilder {
	b.accounts[initMasterEditionAuthorityIdx].set(authority, true, false)
	return b
}

func (b *InitEditionSaleInstructionBuilder) SetSystemProgramAccount(program solana.PublicKey) *InitEditionSaleInstructionBuilder {
	b.accounts[initSystemProgramIdx].set(program, false, false)
	return b
}

func (b *InitEditionSaleInstructionBuilder) Validate() error {
	_, err := collectAccounts(b.programID, b.accounts[:])
	return err
}

func (b *InitEditionSaleInstructionBuilder) Build() (solana.Instruction, error) {
	accounts, err := collectAccounts(b.programID, b.accounts[:])
	if err != nil {
		return nil, err
	}
	data, err := encodeWithDiscriminator(InitEditionSaleDiscriminator, &b.args)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(b.programID, accounts, data), nil
}

// DecodeInitEditionSaleArgs parses init_edition_sale instruction data.
func DecodeInitEditionSaleArgs(data []byte) (InitEditionSaleArgs, error) {
	var args InitEditionSaleArgs
	if len(data) < 8 || [8]byte(data[:8]) != InitEditionSaleDiscriminator {
		return args, errors.New("not an init_edition_sale instruction")
	}
	if err := bin.NewBorshDecoder(data[8:]).Decode(&args); err != nil {
		return args, errors.Errorf("failed to decode init_edition_sale args. err: %s", err.Error())
	}
	return args, nil
}
