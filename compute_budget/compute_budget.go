package compute_budget

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

var ProgramID = solana.MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")

const (
	// compact-u16 length prefix boundaries
	lowValue  = 0x7f
	highValue = 0x3fff

	baseUnits           = 200_000
	unitsPerInstruction = 100_000
	unitsPerByte        = 100

	commandSetComputeUnitLimit uint8 = 2
)

type Estimate struct {
	Signers  int
	Accounts int
	Size     int
	Units    uint64
}

func compactHeader(n int) int {
	switch {
	case n <= lowValue:
		return 1
	case n <= highValue:
		return 2
	default:
		return 3
	}
}

func compactArraySize(n int, size int) int {
	return compactHeader(n) + n*size
}

// EstimateComputeUnits is a rough planning heuristic, not a simulation.
func EstimateComputeUnits(instructions []solana.Instruction) (Estimate, error) {
	signers := make(map[solana.PublicKey]struct{})
	accounts := make(map[solana.PublicKey]struct{})
	size := 0
	for i, ix := range instructions {
		metas := ix.Accounts()
		for _, meta := range metas {
			if meta.IsSigner {
				signers[meta.PublicKey] = struct{}{}
			}
			accounts[meta.PublicKey] = struct{}{}
		}
		accounts[ix.ProgramID()] = struct{}{}
		data, err := ix.Data()
		if err != nil {
			return Estimate{}, errors.Wrapf(err, "failed to read data of instruction %d", i)
		}
		size += 1 + compactArraySize(len(metas), 1) + compactArraySize(len(data), 1)
	}
	return Estimate{
		Signers:  len(signers),
		Accounts: len(accounts),
		Size:     size,
		Units:    uint64(baseUnits + unitsPerInstruction*len(instructions) + unitsPerByte*size),
	}, nil
}

func SetComputeUnitLimit(units uint32) solana.Instruction {
	data := make([]byte, 1+4)
	data[0] = commandSetComputeUnitLimit
	binary.LittleEndian.PutUint32(data[1:], units)
	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{}, data)
}

// ParseSetComputeUnitLimit reads the unit limit back from instruction data.
func ParseSetComputeUnitLimit(data []byte) (uint32, error) {
	if len(data) != 5 {
		return 0, errors.Errorf("invalid length: %d", len(data))
	}
	if data[0] != commandSetComputeUnitLimit {
		return 0, errors.Errorf("not a set compute unit limit instruction: %d", data[0])
	}
	return binary.LittleEndian.Uint32(data[1:]), nil
}

// WithComputeUnitLimit prepends a limit sized by EstimateComputeUnits. The
// given instructions keep their order.
func WithComputeUnitLimit(instructions []solana.Instruction) ([]solana.Instruction, Estimate, error) {
	estimate, err := EstimateComputeUnits(instructions)
	if err != nil {
		return nil, Estimate{}, err
	}
	units := estimate.Units
	if units > uint64(^uint32(0)) {
		units = uint64(^uint32(0))
	}
	out := make([]solana.Instruction, 0, len(instructions)+1)
	out = append(out, SetComputeUnitLimit(uint32(units)))
	out = append(out, instructions...)
	return out, estimate, nil
}
