// Package ixdecode implements the Bell's instruction decoders: one per
// program (SPL Stake Pool, Jito Vault, Token-2022, Jito Steward). Each
// decoder takes a compiled instruction plus the transaction's account
// table and returns a typed variant, or nil if the instruction's tag is
// unrecognized. Decoding never aborts the transaction; an unknown tag or a
// malformed payload yields nil for that instruction only.
package ixdecode

// CompiledInstruction is the raw, not-yet-decoded shape an upstream stream
// delivers: an index into the transaction's program list, the ordered list
// of account-table indices this instruction references, and the opaque
// instruction data.
type CompiledInstruction struct {
	ProgramIndex uint8
	Accounts     []uint8
	Data         []byte
}

// AccountTable is the transaction's ordered list of resolved account
// public keys, base58-encoded (matching the string form config entries are
// keyed by, per the exact-string-equality match rule).
type AccountTable []string

// Instruction is implemented by every decoded instruction variant. It is a
// marker interface only: callers type-switch on the concrete variant.
type Instruction interface {
	isInstruction()
}

// resolveSlots builds a slot-count-sized account list, defaulting every
// entry to the empty string, then overwrites position i with
// table[positions[i]] for every i in range of both positions and the slot
// count, and only when positions[i] is itself a valid table index. This is
// the account-resolution rule common to every decoder in this package.
func resolveSlots(slotCount int, positions []uint8, table AccountTable) []string {
	slots := make([]string, slotCount)
	limit := len(positions)
	if slotCount < limit {
		limit = slotCount
	}
	for i := 0; i < limit; i++ {
		idx := int(positions[i])
		if idx < len(table) {
			slots[i] = table[idx]
		}
	}
	return slots
}
