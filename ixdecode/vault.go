package ixdecode

// JitoVaultProgramID is the hard-coded Jito Vault program id.
const JitoVaultProgramID = "Vau1t6sLNxnzB7ZDsef8TLbPLfyZMYXH8WTNqUdm9g8"

const (
	tagVaultMintTo            = 11
	tagVaultEnqueueWithdrawal = 12
)

const (
	slotsVaultMintTo            = 10
	slotsVaultEnqueueWithdrawal = 10
)

// MintTo carries the vault and the vrt-mint it mints against, plus the
// caller's minimum acceptable output.
type MintTo struct {
	Vault        string
	VrtMint      string
	MinAmountOut uint64
}

func (MintTo) isInstruction() {}

// EnqueueWithdrawal carries only the vault address; its vrt-mint is not a
// positional account on this instruction and must be resolved via an RPC
// vault-account lookup by the evaluator.
type EnqueueWithdrawal struct {
	Vault  string
	Amount uint64
}

func (EnqueueWithdrawal) isInstruction() {}

// DecodeVault decodes a compiled instruction belonging to the Jito Vault
// program.
func DecodeVault(ci CompiledInstruction, table AccountTable) Instruction {
	if len(ci.Data) == 0 {
		return nil
	}
	tag := ci.Data[0]
	body := ci.Data[1:]

	switch tag {
	case tagVaultMintTo:
		// data layout: amount_in:u64 ++ min_amount_out:u64; the evaluator
		// only cares about the caller's minimum acceptable output.
		minAmountOut, ok := readU64(body, 8)
		if !ok {
			return nil
		}
		slots := resolveSlots(slotsVaultMintTo, ci.Accounts, table)
		return MintTo{Vault: slots[1], VrtMint: slots[2], MinAmountOut: minAmountOut}

	case tagVaultEnqueueWithdrawal:
		amount, ok := readU64(body, 0)
		if !ok {
			return nil
		}
		slots := resolveSlots(slotsVaultEnqueueWithdrawal, ci.Accounts, table)
		return EnqueueWithdrawal{Vault: slots[1], Amount: amount}

	default:
		return nil
	}
}
