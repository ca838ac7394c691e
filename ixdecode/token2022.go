package ixdecode

// Token2022ProgramID is the hard-coded SPL Token-2022 program id.
const Token2022ProgramID = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"

// tagToken2022MintTo matches the classic SPL Token program's MintTo
// instruction index, preserved unchanged in Token-2022.
const tagToken2022MintTo = 7

const slotsToken2022MintTo = 3

// Token2022MintTo is used only as a correlating side-effect for stake pool
// DepositStake: the evaluator looks for one in the same transaction whose
// mint/destination/owner match the DepositStake's resolved accounts.
type Token2022MintTo struct {
	Mint        string
	Destination string
	Owner       string
	Amount      uint64
}

func (Token2022MintTo) isInstruction() {}

// DecodeToken2022 decodes a compiled instruction belonging to the SPL
// Token-2022 program. Only MintTo is evaluated; every other tag yields nil.
func DecodeToken2022(ci CompiledInstruction, table AccountTable) Instruction {
	if len(ci.Data) == 0 {
		return nil
	}
	tag := ci.Data[0]
	if tag != tagToken2022MintTo {
		return nil
	}

	amount, ok := readU64(ci.Data, 1)
	if !ok {
		return nil
	}

	slots := resolveSlots(slotsToken2022MintTo, ci.Accounts, table)
	return Token2022MintTo{
		Mint:        slots[0],
		Destination: slots[1],
		Owner:       slots[2],
		Amount:      amount,
	}
}
