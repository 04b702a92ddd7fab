package core_auctions

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

var ErrMissingAccount = errors.New("missing instruction account")

// accountSlot is one positional account of an instruction. Order of the slots
// is the order the program expects.
type accountSlot struct {
	name     string
	meta     *solana.AccountMeta
	optional bool
}

func (s *accountSlot) set(key solana.PublicKey, writable, signer bool) {
	s.meta = solana.NewAccountMeta(key, writable, signer)
}

func collectAccounts(programID solana.PublicKey, slots []accountSlot) (solana.AccountMetaSlice, error) {
	accounts := make(solana.AccountMetaSlice, 0, len(slots))
	for _, slot := range slots {
		if slot.meta == nil {
			if !slot.optional {
				return nil, errors.Wrapf(ErrMissingAccount, "%s is not set", slot.name)
			}
			// absent optional accounts are passed as the program id
			accounts = append(accounts, solana.NewAccountMeta(programID, false, false))
			continue
		}
		accounts = append(accounts, slot.meta)
	}
	return accounts, nil
}

func encodeWithDiscriminator(disc [8]byte, args interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(disc[:])
	if args == nil {
		return buf.Bytes(), nil
	}
	if err := bin.NewBorshEncoder(buf).Encode(args); err != nil {
		return nil, errors.Errorf("failed to encode borsh payload. err: %s", err.Error())
	}
	return buf.Bytes(), nil
}
