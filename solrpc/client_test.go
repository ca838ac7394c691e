package solrpc

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestDecodeVaultVrtMint(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	data := append(make([]byte, 8), mint.Bytes()...)

	got, ok := decodeVaultVrtMint(data)
	require.True(t, ok)
	require.Equal(t, mint.String(), got)
}

func TestDecodeVaultVrtMintTooShort(t *testing.T) {
	_, ok := decodeVaultVrtMint([]byte{1, 2, 3})
	require.False(t, ok)
}

func buildMetadata(name, symbol string) []byte {
	data := make([]byte, 1+32+32)
	nameLen := make([]byte, 4)
	binary.LittleEndian.PutUint32(nameLen, uint32(len(name)))
	data = append(data, nameLen...)
	data = append(data, []byte(name)...)

	symLen := make([]byte, 4)
	binary.LittleEndian.PutUint32(symLen, uint32(len(symbol)))
	data = append(data, symLen...)
	data = append(data, []byte(symbol)...)
	return data
}

func TestDecodeMetadataSymbol(t *testing.T) {
	data := buildMetadata("Jito Vault Token", "VRT")
	got, ok := decodeMetadataSymbol(data)
	require.True(t, ok)
	require.Equal(t, "VRT", got)
}

func TestDecodeMetadataSymbolTooShort(t *testing.T) {
	_, ok := decodeMetadataSymbol([]byte{1, 2, 3})
	require.False(t, ok)
}
