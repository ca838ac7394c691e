// Package txparser turns one upstream stream message into the decoded
// instructions and events the evaluator consumes. It enforces the
// success-status gate (I1), the outer/inner account-resolution symmetry,
// and the outer-only event-scan asymmetry that keeps Steward events from
// being double-counted across the outer and inner instruction passes.
package txparser

import (
	"encoding/base64"

	"github.com/mr-tron/base58"

	"github.com/jito-foundation/bell/eventdecode"
	"github.com/jito-foundation/bell/ixdecode"
)

// RawTransaction is the upstream-delivered shape this package consumes: an
// already-demultiplexed single transaction update.
type RawTransaction struct {
	Signature         [64]byte
	Success           bool
	AccountTable      ixdecode.AccountTable
	OuterInstructions []ixdecode.CompiledInstruction
	InnerInstructions []ixdecode.CompiledInstruction
	LogMessages       []string
}

// Parsed is the output of Parse: the decoded instructions and events for
// one transaction, in on-chain execution order.
type Parsed struct {
	Signature   string
	Instructions []ixdecode.Instruction
	Events       []eventdecode.Event
}

// Parse extracts and decodes one transaction. A non-success execution
// status yields an empty Parsed (B1) with no error; this is not a parse
// failure, just nothing to evaluate.
func Parse(tx RawTransaction) *Parsed {
	out := &Parsed{Signature: base58.Encode(tx.Signature[:])}
	if !tx.Success {
		return out
	}

	stewardInvoked := false
	for _, ci := range tx.OuterInstructions {
		programID := resolveProgramID(ci, tx.AccountTable)
		if programID == ixdecode.JitoStewardProgramID {
			stewardInvoked = true
		}
		if ix := ixdecode.DecodeByProgramID(programID, ci, tx.AccountTable); ix != nil {
			out.Instructions = append(out.Instructions, ix)
		}
	}

	// Events are scanned only from the outer pass, and only when an outer
	// instruction invokes the Steward program; inner instructions are never
	// re-scanned for log events, preserving the no-double-count rule.
	if stewardInvoked {
		for _, line := range tx.LogMessages {
			if event, ok := eventdecode.DecodeLogLine(line); ok {
				out.Events = append(out.Events, event)
			}
		}
	}

	for _, ci := range tx.InnerInstructions {
		programID := resolveProgramID(ci, tx.AccountTable)
		if ix := ixdecode.DecodeByProgramID(programID, ci, tx.AccountTable); ix != nil {
			out.Instructions = append(out.Instructions, ix)
		}
	}

	return out
}

// resolveProgramID maps a compiled instruction's ProgramIndex back into
// the account table to find which program this instruction invokes.
func resolveProgramID(ci ixdecode.CompiledInstruction, table ixdecode.AccountTable) string {
	idx := int(ci.ProgramIndex)
	if idx < 0 || idx >= len(table) {
		return ""
	}
	return table[idx]
}

// DecodeBase64Log base64-encodes raw, giving the payload that follows the
// "Program data: " prefix of a log line (the prefix itself is not added).
func DecodeBase64Log(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}
