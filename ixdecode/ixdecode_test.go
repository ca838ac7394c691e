package ixdecode

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func u64le(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

var testTable = AccountTable{
	"pool", "t1", "t2", "withdrawAuth", "t4", "t5", "t6",
	"destUserPool", "t8", "t9", "poolMint", "t11", "t12", "t13", "t14",
}

func TestDecodeDepositStakeAccountResolution(t *testing.T) {
	ci := CompiledInstruction{
		Data:     []byte{tagDepositStake},
		Accounts: []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	}

	got := DecodeStakePool(ci, testTable)
	want := DepositStake{
		Pool:              "pool",
		WithdrawAuthority: "withdrawAuth",
		DestUserPool:      "destUserPool",
		PoolMint:          "poolMint",
	}
	require.Equal(t, want, got)
}

// TestPartialPositions covers P1/B2: fewer position bytes than the
// variant's slot count leaves the later slots at their synthetic default.
func TestPartialPositions(t *testing.T) {
	ci := CompiledInstruction{
		Data:     []byte{tagDepositStake},
		Accounts: []uint8{0, 1}, // far short of the 15-slot layout
	}

	got := DecodeStakePool(ci, testTable).(DepositStake)
	require.Equal(t, "pool", got.Pool)
	require.Equal(t, "", got.PoolMint)
	require.Equal(t, "", got.WithdrawAuthority)
	require.Equal(t, "", got.DestUserPool)
}

func TestDecodeDepositSol(t *testing.T) {
	data := append([]byte{tagDepositSol}, u64le(5_000_000_000)...)
	ci := CompiledInstruction{
		Data:     data,
		Accounts: []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	}
	table := AccountTable{"a0", "a1", "a2", "a3", "a4", "a5", "a6", "MintA", "a8", "a9", "a10"}

	got := DecodeStakePool(ci, table)
	require.Equal(t, DepositSol{PoolMint: "MintA", Amount: 5_000_000_000}, got)
}

func TestDecodeWithdrawStake(t *testing.T) {
	data := append([]byte{tagWithdrawStake}, u64le(2_000_000_000)...)
	ci := CompiledInstruction{
		Data:     data,
		Accounts: []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}
	table := AccountTable{"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "MintA", "a10", "a11", "a12"}

	got := DecodeStakePool(ci, table)
	require.Equal(t, WithdrawStake{PoolMint: "MintA", MinimumOut: 2_000_000_000}, got)
}

func TestDecodeWithdrawSol(t *testing.T) {
	data := append([]byte{tagWithdrawSol}, u64le(1_000_000_000)...)
	ci := CompiledInstruction{
		Data:     data,
		Accounts: []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}
	table := AccountTable{"a0", "a1", "a2", "a3", "a4", "a5", "a6", "MintA", "a8", "a9", "a10", "a11", "a12"}

	got := DecodeStakePool(ci, table)
	require.Equal(t, WithdrawSol{PoolMint: "MintA", Amount: 1_000_000_000}, got)
}

func TestDecodeUnknownTagYieldsNil(t *testing.T) {
	ci := CompiledInstruction{Data: []byte{250}}
	require.Nil(t, DecodeStakePool(ci, testTable))
}

func TestDecodeEmptyDataYieldsNil(t *testing.T) {
	require.Nil(t, DecodeStakePool(CompiledInstruction{}, testTable))
}

func TestDecodeVaultMintTo(t *testing.T) {
	data := append([]byte{tagVaultMintTo}, u64le(7_000_000_000)...)
	data = append(data, u64le(10_000_000_000)...)
	ci := CompiledInstruction{
		Data:     data,
		Accounts: []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	}
	table := AccountTable{"a0", "vault", "VRT1", "a3", "a4", "a5", "a6", "a7", "a8", "a9"}

	got := DecodeVault(ci, table)
	require.Equal(t, MintTo{Vault: "vault", VrtMint: "VRT1", MinAmountOut: 10_000_000_000}, got)
}

func TestDecodeVaultEnqueueWithdrawal(t *testing.T) {
	data := append([]byte{tagVaultEnqueueWithdrawal}, u64le(4_000_000_000)...)
	ci := CompiledInstruction{
		Data:     data,
		Accounts: []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	}
	table := AccountTable{"a0", "vault", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9"}

	got := DecodeVault(ci, table)
	require.Equal(t, EnqueueWithdrawal{Vault: "vault", Amount: 4_000_000_000}, got)
}

func TestDecodeToken2022MintTo(t *testing.T) {
	data := append([]byte{7}, u64le(3_000_000_000)...)
	ci := CompiledInstruction{
		Data:     data,
		Accounts: []uint8{0, 1, 2},
	}
	table := AccountTable{"MintA", "Acct1", "Acct2"}

	got := DecodeToken2022(ci, table)
	require.Equal(t, Token2022MintTo{
		Mint: "MintA", Destination: "Acct1", Owner: "Acct2", Amount: 3_000_000_000,
	}, got)
}

func TestDecodeByProgramIDUnknown(t *testing.T) {
	require.Nil(t, DecodeByProgramID("unknown-program", CompiledInstruction{}, testTable))
}

func TestDecodeByProgramIDRoutesStakePool(t *testing.T) {
	ci := CompiledInstruction{Data: []byte{tagDepositStake}}
	got := DecodeByProgramID(StakePoolProgramID, ci, testTable)
	require.IsType(t, DepositStake{}, got)
}
