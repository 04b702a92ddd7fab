package core_auctions

import "github.com/gagliardetto/solana-go"

func FindEditionSaleConfigPda(programID, collection solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{[]byte(editionSaleConfigSeed), collection.Bytes()},
		programID,
	)
}

func FindMasterEditionAuthorityPda(programID, collection solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{[]byte(masterEditionAuthoritySeed), collection.Bytes()},
		programID,
	)
}
