package auction_house

import (
	"context"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solana-edition-sale/compute_budget"
	"solana-edition-sale/core_auctions"
	"solana-edition-sale/wallet_manager"
)

var ctx = context.TODO()
var programID = solana.NewWallet().PublicKey()
var usdcMint = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

type fakeClient struct {
	blockhash   solana.Hash
	accountData []byte
}

func (c *fakeClient) GetLatestBlockhash(context.Context, rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{Blockhash: c.blockhash},
	}, nil
}

func (c *fakeClient) GetAccountInfoWithOpts(context.Context, solana.PublicKey, *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	if c.accountData == nil {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{
		Value: &rpc.Account{Data: rpc.DataBytesOrJSONFromBytes(c.accountData)},
	}, nil
}

type parties struct {
	collection solana.PublicKey
	seller     solana.PublicKey
	buyer      solana.PublicKey
	edition    solana.PrivateKey
}

func newParties() parties {
	return parties{
		collection: solana.NewWallet().PublicKey(),
		seller:     solana.NewWallet().PublicKey(),
		buyer:      solana.NewWallet().PublicKey(),
		edition:    solana.NewWallet().PrivateKey,
	}
}

func newTestActor(t *testing.T, client *fakeClient, estimate bool) *AuctionHouseActor {
	config := wallet_manager.DefaultConfig(programID)
	config.EstimateComputeBudget = estimate
	aucHouse, err := NewAuctionHouseActor(wallet_manager.NewWalletManager(client, config))
	require.NoError(t, err)
	return aucHouse
}

func (p parties) fixEdition(aucHouse *AuctionHouseActor) {
	aucHouse.NewEdition = func() (solana.PrivateKey, error) {
		return p.edition, nil
	}
}

func (p parties) buyParams(mint solana.PublicKey) BuyEditionParams {
	return BuyEditionParams{
		Collection:   p.collection.String(),
		Seller:       p.seller.String(),
		Buyer:        p.buyer.String(),
		CurrencyMint: mint.String(),
	}
}

func TestParseAddress(t *testing.T) {
	key := solana.NewWallet().PublicKey()
	parsed, err := ParseAddress("seller", " "+key.String()+"\n")
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	for _, bad := range []string{"", "not-base58-0OIl", "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"} {
		_, err := ParseAddress("seller", bad)
		assert.True(t, errors.Is(err, ErrInvalidAddress), "address %q", bad)
	}
}

func TestResolvePaymentRoute_Native(t *testing.T) {
	p := newParties()
	route, err := ResolvePaymentRoute(solana.SolMint, solana.SolMint, p.buyer, p.seller)
	require.NoError(t, err)
	assert.Equal(t, RouteNative, route.Kind())
	assert.Equal(t, p.buyer, route.PaymentAccount())
	_, ok := route.SellerPaymentReceipt()
	assert.False(t, ok)
}

func TestResolvePaymentRoute_Token(t *testing.T) {
	p := newParties()
	route, err := ResolvePaymentRoute(solana.SolMint, usdcMint, p.buyer, p.seller)
	require.NoError(t, err)
	assert.Equal(t, RouteToken, route.Kind())

	buyerAta, _, err := solana.FindAssociatedTokenAddress(p.buyer, usdcMint)
	require.NoError(t, err)
	sellerAta, _, err := solana.FindAssociatedTokenAddress(p.seller, usdcMint)
	require.NoError(t, err)
	assert.Equal(t, buyerAta, route.PaymentAccount())
	receipt, ok := route.SellerPaymentReceipt()
	assert.True(t, ok)
	assert.Equal(t, sellerAta, receipt)

	again, err := ResolvePaymentRoute(solana.SolMint, usdcMint, p.buyer, p.seller)
	require.NoError(t, err)
	assert.Equal(t, route, again)
}

func TestResolvePaymentRoute_MissingMint(t *testing.T) {
	p := newParties()
	_, err := ResolvePaymentRoute(solana.SolMint, solana.PublicKey{}, p.buyer, p.seller)
	assert.True(t, errors.Is(err, ErrAccountResolution))
}

func TestAuctionHouseActor_AssembleBuyEdition_Native(t *testing.T) {
	p := newParties()
	aucHouse := newTestActor(t, &fakeClient{}, false)
	p.fixEdition(aucHouse)

	assembly, err := aucHouse.AssembleBuyEdition(p.buyParams(solana.SolMint))
	require.NoError(t, err)
	require.Len(t, assembly.Instructions, 1)
	assert.Equal(t, p.buyer, assembly.FeePayer)
	require.Len(t, assembly.Signers, 1)
	assert.Equal(t, p.edition.PublicKey(), assembly.Signers[0].PublicKey())
	assert.Nil(t, assembly.Estimate)

	buyerAta, _, _ := solana.FindAssociatedTokenAddress(p.buyer, solana.SolMint)
	sellerAta, _, _ := solana.FindAssociatedTokenAddress(p.seller, solana.SolMint)
	accounts := assembly.Instructions[0].Accounts()
	for _, meta := range accounts {
		assert.NotEqual(t, buyerAta, meta.PublicKey)
		assert.NotEqual(t, sellerAta, meta.PublicKey)
	}
	assert.Equal(t, p.buyer, accounts[6].PublicKey)
	assert.Equal(t, programID, accounts[7].PublicKey)

	config, _, err := core_auctions.FindEditionSaleConfigPda(programID, p.collection)
	require.NoError(t, err)
	authority, _, err := core_auctions.FindMasterEditionAuthorityPda(programID, p.collection)
	require.NoError(t, err)
	assert.Equal(t, authority, accounts[3].PublicKey)
	assert.Equal(t, config, accounts[4].PublicKey)
	assert.Equal(t, p.edition.PublicKey(), accounts[5].PublicKey)
}

func TestAuctionHouseActor_AssembleBuyEdition_Token(t *testing.T) {
	p := newParties()
	aucHouse := newTestActor(t, &fakeClient{}, false)
	p.fixEdition(aucHouse)

	assembly, err := aucHouse.AssembleBuyEdition(p.buyParams(usdcMint))
	require.NoError(t, err)

	buyerAta, err := DeriveTokenAccount(usdcMint, p.buyer)
	require.NoError(t, err)
	sellerAta, err := DeriveTokenAccount(usdcMint, p.seller)
	require.NoError(t, err)
	accounts := assembly.Instructions[0].Accounts()
	assert.Equal(t, buyerAta, accounts[6].PublicKey)
	assert.Equal(t, sellerAta, accounts[7].PublicKey)
	assert.True(t, accounts[7].IsWritable)
	assert.Equal(t, usdcMint, accounts[8].PublicKey)
}

func TestAuctionHouseActor_AssembleBuyEdition_InvalidAddress(t *testing.T) {
	p := newParties()
	aucHouse := newTestActor(t, &fakeClient{}, false)
	generated := false
	aucHouse.NewEdition = func() (solana.PrivateKey, error) {
		generated = true
		return p.edition, nil
	}

	params := p.buyParams(usdcMint)
	params.Buyer = "buyer-wallet"
	assembly, err := aucHouse.AssembleBuyEdition(params)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAddress))
	assert.Empty(t, assembly.Instructions)
	assert.False(t, generated)
}

func TestAuctionHouseActor_CreateInitEditionSaleTransaction(t *testing.T) {
	p := newParties()
	aucHouse := newTestActor(t, &fakeClient{blockhash: solana.Hash(solana.NewWallet().PublicKey())}, false)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	params := InitEditionSaleParams{
		Seller:       p.seller.String(),
		Collection:   p.collection.String(),
		CurrencyMint: solana.SolMint.String(),
		Price:        250_000_000,
		StartDate:    start,
		EndDate:      start.Add(7 * 24 * time.Hour),
	}

	first, err := aucHouse.CreateInitEditionSaleTransaction(ctx, params)
	require.NoError(t, err)
	second, err := aucHouse.CreateInitEditionSaleTransaction(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	tx, err := wallet_manager.DecodeTransaction(first)
	require.NoError(t, err)
	require.Len(t, tx.Signatures, 1)
	assert.Equal(t, solana.Signature{}, tx.Signatures[0])
	assert.Equal(t, p.seller, tx.Message.AccountKeys[0])
	require.Len(t, tx.Message.Instructions, 1)

	args, err := core_auctions.DecodeInitEditionSaleArgs(tx.Message.Instructions[0].Data)
	require.NoError(t, err)
	assert.Equal(t, uint64(250_000_000), args.Price)
	assert.Equal(t, start.UnixMilli(), args.StartDate)
	assert.Equal(t, start.Add(7*24*time.Hour).UnixMilli(), args.EndDate)
}

func TestAuctionHouseActor_CreateInitEditionSaleTransaction_InvalidAddress(t *testing.T) {
	aucHouse := newTestActor(t, &fakeClient{}, false)
	_, err := aucHouse.CreateInitEditionSaleTransaction(ctx, InitEditionSaleParams{
		Seller:       solana.NewWallet().PublicKey().String(),
		Collection:   "collection",
		CurrencyMint: solana.SolMint.String(),
	})
	assert.True(t, errors.Is(err, ErrInvalidAddress))
}

func TestAuctionHouseActor_CreateBuyEditionTransaction(t *testing.T) {
	p := newParties()
	aucHouse := newTestActor(t, &fakeClient{blockhash: solana.Hash(solana.NewWallet().PublicKey())}, false)
	p.fixEdition(aucHouse)

	encoded, err := aucHouse.CreateBuyEditionTransaction(ctx, p.buyParams(usdcMint))
	require.NoError(t, err)
	again, err := aucHouse.CreateBuyEditionTransaction(ctx, p.buyParams(usdcMint))
	require.NoError(t, err)
	assert.Equal(t, encoded, again)

	tx, err := wallet_manager.DecodeTransaction(encoded)
	require.NoError(t, err)
	require.Len(t, tx.Signatures, 2)
	assert.Equal(t, p.buyer, tx.Message.AccountKeys[0])
	assert.Equal(t, solana.Signature{}, tx.Signatures[0])

	payload, err := tx.Message.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, p.edition.PublicKey(), tx.Message.AccountKeys[1])
	assert.True(t, tx.Signatures[1].Verify(p.edition.PublicKey(), payload))

	buyerAta, _ := DeriveTokenAccount(usdcMint, p.buyer)
	sellerAta, _ := DeriveTokenAccount(usdcMint, p.seller)
	assert.Contains(t, tx.Message.AccountKeys, buyerAta)
	assert.Contains(t, tx.Message.AccountKeys, sellerAta)
}

func TestAuctionHouseActor_EstimateComputeBudget(t *testing.T) {
	p := newParties()
	aucHouse := newTestActor(t, &fakeClient{blockhash: solana.Hash(solana.NewWallet().PublicKey())}, true)
	p.fixEdition(aucHouse)

	assembly, err := aucHouse.AssembleBuyEdition(p.buyParams(solana.SolMint))
	require.NoError(t, err)
	require.Len(t, assembly.Instructions, 2)
	require.NotNil(t, assembly.Estimate)
	assert.Equal(t, compute_budget.ProgramID, assembly.Instructions[0].ProgramID())
	assert.Equal(t, programID, assembly.Instructions[1].ProgramID())

	// 13 accounts, 8 bytes of data
	assert.Equal(t, 1+(1+13)+(1+8), assembly.Estimate.Size)
	assert.Equal(t, uint64(200_000+100_000+100*24), assembly.Estimate.Units)

	data, err := assembly.Instructions[0].Data()
	require.NoError(t, err)
	units, err := compute_budget.ParseSetComputeUnitLimit(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(assembly.Estimate.Units), units)

	_, err = aucHouse.CreateBuyEditionTransaction(ctx, p.buyParams(solana.SolMint))
	require.NoError(t, err)
}

func TestAuctionHouseActor_FetchEditionSaleConfig(t *testing.T) {
	p := newParties()
	stored := core_auctions.EditionSaleConfig{
		Collection:   p.collection,
		Seller:       p.seller,
		CurrencyMint: usdcMint,
		Price:        10_000_000,
		StartDate:    1_714_521_600_000,
		EndDate:      1_715_126_400_000,
		Bump:         253,
	}
	data, err := core_auctions.EncodeEditionSaleConfig(stored)
	require.NoError(t, err)

	aucHouse := newTestActor(t, &fakeClient{accountData: data}, false)
	config, err := aucHouse.FetchEditionSaleConfig(ctx, p.collection.String())
	require.NoError(t, err)
	assert.Equal(t, stored, config)

	missing := newTestActor(t, &fakeClient{}, false)
	_, err = missing.FetchEditionSaleConfig(ctx, p.collection.String())
	assert.Error(t, err)
}

func TestNewAuctionHouseActor_InvalidConfig(t *testing.T) {
	_, err := NewAuctionHouseActor(wallet_manager.NewWalletManager(&fakeClient{}, wallet_manager.Config{}))
	assert.Error(t, err)
}

func TestDeriveTokenAccount_SystemProgramOwner(t *testing.T) {
	first, err := DeriveTokenAccount(usdcMint, solana.SystemProgramID)
	require.NoError(t, err)
	second, err := DeriveTokenAccount(usdcMint, solana.PublicKey{})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	expected, _, err := solana.FindAssociatedTokenAddress(solana.SystemProgramID, usdcMint)
	require.NoError(t, err)
	assert.Equal(t, expected, first)
}

func TestAuctionHouseActor_AssembleBuyEdition_EditionKeyError(t *testing.T) {
	p := newParties()
	aucHouse := newTestActor(t, &fakeClient{}, false)
	errNoEntropy := errors.New("no entropy")
	aucHouse.NewEdition = func() (solana.PrivateKey, error) {
		return nil, errNoEntropy
	}
	_, err := aucHouse.AssembleBuyEdition(p.buyParams(solana.SolMint))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoEntropy))
}
