package txparser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jito-foundation/bell/ixdecode"
)

func TestParseFailedTransactionYieldsEmpty(t *testing.T) {
	tx := RawTransaction{
		Success:           false,
		AccountTable:      ixdecode.AccountTable{ixdecode.StakePoolProgramID},
		OuterInstructions: []ixdecode.CompiledInstruction{{ProgramIndex: 0, Data: []byte{9}}},
	}

	parsed := Parse(tx)
	require.Empty(t, parsed.Instructions)
	require.Empty(t, parsed.Events)
}

func TestParseDispatchesOuterAndInner(t *testing.T) {
	table := ixdecode.AccountTable{
		ixdecode.StakePoolProgramID, "a1", "a2", "a3", "MintA",
	}
	depositSol := ixdecode.CompiledInstruction{
		ProgramIndex: 0,
		Data:         append([]byte{14}, make([]byte, 8)...),
		Accounts:     []uint8{0, 1, 2, 3, 4, 1, 1, 1, 1, 1, 1},
	}

	tx := RawTransaction{
		Success:           true,
		AccountTable:      table,
		OuterInstructions: []ixdecode.CompiledInstruction{depositSol},
		InnerInstructions: []ixdecode.CompiledInstruction{depositSol},
	}

	parsed := Parse(tx)
	require.Len(t, parsed.Instructions, 2, "one outer + one inner decode")
}

func TestParseIgnoresUnrelatedLogLine(t *testing.T) {
	table := ixdecode.AccountTable{ixdecode.JitoStewardProgramID}
	tx := RawTransaction{
		Success:      true,
		AccountTable: table,
		LogMessages:  []string{"totally unrelated log line"},
	}

	parsed := Parse(tx)
	require.Empty(t, parsed.Events)
}

func TestParseSkipsUnresolvedProgramIndex(t *testing.T) {
	tx := RawTransaction{
		Success:           true,
		AccountTable:      ixdecode.AccountTable{"onlyone"},
		OuterInstructions: []ixdecode.CompiledInstruction{{ProgramIndex: 5, Data: []byte{1}}},
	}

	parsed := Parse(tx)
	require.Empty(t, parsed.Instructions)
}
