package ixdecode

import "encoding/binary"

// StakePoolProgramID is the hard-coded SPL Stake Pool program id.
const StakePoolProgramID = "SPoo1Ku8WFXoNDMHPsrGSTSG1Y47rzgn41SLUNakuHy"

// Stake pool instruction tags, matching the on-chain Borsh enum ordering.
const (
	tagDepositStake                       = 9
	tagWithdrawStake                      = 10
	tagDepositSol                         = 14
	tagWithdrawSol                        = 16
	tagIncreaseValidatorStake             = 4
	tagDecreaseValidatorStakeWithReserve  = 21
)

// slot counts per variant, from the positional account layouts recovered
// for each instruction.
const (
	slotsDepositStake              = 15
	slotsWithdrawStake              = 13
	slotsDepositSol                 = 11
	slotsWithdrawSol                = 13
	slotsIncreaseValidatorStake     = 14
	slotsDecreaseValidatorStakeWithReserve = 11
)

// IncreaseValidatorStake carries the stake pool address and the lamport
// amount moved into the validator's transient stake account.
type IncreaseValidatorStake struct {
	Pool   string
	Amount uint64
}

func (IncreaseValidatorStake) isInstruction() {}

// DepositStake carries the accounts needed to correlate this instruction
// against a same-transaction Token-2022 MintTo.
type DepositStake struct {
	Pool              string
	PoolMint          string
	DestUserPool      string
	WithdrawAuthority string
}

func (DepositStake) isInstruction() {}

// WithdrawStake carries the pool-mint used as the evaluator's config key
// and the minimum pool-token amount the withdrawer will accept burning.
type WithdrawStake struct {
	PoolMint     string
	MinimumOut   uint64
}

func (WithdrawStake) isInstruction() {}

// DepositSol carries the lamport amount deposited directly (no stake
// account involved).
type DepositSol struct {
	PoolMint string
	Amount   uint64
}

func (DepositSol) isInstruction() {}

// WithdrawSol carries the pool-token amount redeemed for lamports.
type WithdrawSol struct {
	PoolMint string
	Amount   uint64
}

func (WithdrawSol) isInstruction() {}

// DecreaseValidatorStakeWithReserve carries the stake pool address and the
// lamport amount moved out of the validator's stake account.
type DecreaseValidatorStakeWithReserve struct {
	Pool   string
	Amount uint64
}

func (DecreaseValidatorStakeWithReserve) isInstruction() {}

// DecodeStakePool decodes a compiled instruction belonging to the SPL Stake
// Pool program. It returns nil for any tag this module does not evaluate.
func DecodeStakePool(ci CompiledInstruction, table AccountTable) Instruction {
	if len(ci.Data) == 0 {
		return nil
	}
	tag := ci.Data[0]
	body := ci.Data[1:]

	switch tag {
	case tagDepositStake:
		slots := resolveSlots(slotsDepositStake, ci.Accounts, table)
		return DepositStake{
			Pool:              slots[0],
			WithdrawAuthority: slots[3],
			DestUserPool:      slots[7],
			PoolMint:          slots[10],
		}

	case tagWithdrawStake:
		amount, ok := readU64(body, 0)
		if !ok {
			return nil
		}
		slots := resolveSlots(slotsWithdrawStake, ci.Accounts, table)
		return WithdrawStake{PoolMint: slots[9], MinimumOut: amount}

	case tagDepositSol:
		amount, ok := readU64(body, 0)
		if !ok {
			return nil
		}
		slots := resolveSlots(slotsDepositSol, ci.Accounts, table)
		return DepositSol{PoolMint: slots[7], Amount: amount}

	case tagWithdrawSol:
		amount, ok := readU64(body, 0)
		if !ok {
			return nil
		}
		slots := resolveSlots(slotsWithdrawSol, ci.Accounts, table)
		return WithdrawSol{PoolMint: slots[7], Amount: amount}

	case tagIncreaseValidatorStake:
		amount, ok := readU64(body, 0)
		if !ok {
			return nil
		}
		slots := resolveSlots(slotsIncreaseValidatorStake, ci.Accounts, table)
		return IncreaseValidatorStake{Pool: slots[0], Amount: amount}

	case tagDecreaseValidatorStakeWithReserve:
		amount, ok := readU64(body, 0)
		if !ok {
			return nil
		}
		slots := resolveSlots(slotsDecreaseValidatorStakeWithReserve, ci.Accounts, table)
		return DecreaseValidatorStakeWithReserve{Pool: slots[0], Amount: amount}

	default:
		return nil
	}
}

// readU64 reads a little-endian u64 at offset, reporting false if body is
// too short.
func readU64(body []byte, offset int) (uint64, bool) {
	if len(body) < offset+8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(body[offset : offset+8]), true
}
