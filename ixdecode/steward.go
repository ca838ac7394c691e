package ixdecode

import "encoding/binary"

// JitoStewardProgramID is the hard-coded Jito Steward program id.
const JitoStewardProgramID = "Stewardf95sJbmtcZsyagb2dg4Mo8eVQho8gpECvLx8"

// tagCopyDirectedStakeTargets is the 8-byte discriminator for the only
// Steward instruction this module decodes. It is decoded for completeness
// but never evaluated against a threshold.
var tagCopyDirectedStakeTargets = [8]byte{201, 64, 152, 99, 29, 13, 87, 208}

const slotsCopyDirectedStakeTargets = 1

// CopyDirectedStakeTargets carries the validator vote account, the
// directed lamport amount, and its index within the directed-stake list.
type CopyDirectedStakeTargets struct {
	Vote      string
	Lamports  uint64
	ListIndex uint32
}

func (CopyDirectedStakeTargets) isInstruction() {}

// DecodeSteward decodes a compiled instruction belonging to the Jito
// Steward program.
func DecodeSteward(ci CompiledInstruction, table AccountTable) Instruction {
	if len(ci.Data) < 8 {
		return nil
	}
	var tag [8]byte
	copy(tag[:], ci.Data[:8])
	if tag != tagCopyDirectedStakeTargets {
		return nil
	}
	body := ci.Data[8:]
	if len(body) < 12 {
		return nil
	}
	lamports := binary.LittleEndian.Uint64(body[0:8])
	listIndex := binary.LittleEndian.Uint32(body[8:12])

	slots := resolveSlots(slotsCopyDirectedStakeTargets, ci.Accounts, table)
	return CopyDirectedStakeTargets{
		Vote:      slots[0],
		Lamports:  lamports,
		ListIndex: listIndex,
	}
}
