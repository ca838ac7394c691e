// Package solrpc implements the Bell's auxiliary RPC lookups: receipt-token
// decimals, receipt-token symbol, and a vault account's vrt-mint field.
// Every lookup degrades to a documented default on failure rather than
// failing the evaluator outright, except the vault-account lookup, whose
// failure leaves the evaluator with no amount to convert and so is
// propagated as a berr.Rpc error for the caller to log-and-skip.
package solrpc

import (
	"context"
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	"golang.org/x/sync/singleflight"

	"github.com/jito-foundation/bell/belllog"
	"github.com/jito-foundation/bell/berr"
)

var log = belllog.NewSubsystemLogger("SOLR")

// DefaultDecimals is returned whenever the mint account cannot be fetched
// or decoded (I5).
const DefaultDecimals = 9

// DefaultSymbol is returned whenever the token's metadata account cannot
// be resolved.
const DefaultSymbol = "VRT"

// metadataProgramID is the Metaplex Token Metadata program, whose PDA
// derivation is this package's reason for depending on solana-go rather
// than a hand-rolled JSON-RPC client: ed25519 curve-point validation for
// the PDA bump search has no reasonable stdlib-only implementation.
var metadataProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

// Client wraps a Solana JSON-RPC endpoint with the Bell's auxiliary
// lookups. Concurrent Decimals or Symbol calls for the same mint share one
// RPC round trip; results are not cached, so each later call fetches again.
type Client struct {
	rpc   *rpc.Client
	group singleflight.Group
}

// New builds a Client against endpoint.
func New(endpoint string) *Client {
	return &Client{rpc: rpc.New(endpoint)}
}

// Decimals resolves mint's decimals, defaulting to DefaultDecimals on any
// failure (I5). Concurrent lookups for the same mint are collapsed.
func (c *Client) Decimals(ctx context.Context, mint string) uint8 {
	v, _, _ := c.group.Do("decimals:"+mint, func() (interface{}, error) {
		pub, err := solana.PublicKeyFromBase58(mint)
		if err != nil {
			return uint8(DefaultDecimals), nil
		}
		info, err := c.rpc.GetAccountInfo(ctx, pub)
		if err != nil || info == nil || info.Value == nil {
			log.Debugf("decimals lookup failed for %s, defaulting to %d: %v", mint, DefaultDecimals, err)
			return uint8(DefaultDecimals), nil
		}
		var mintAccount token.Mint
		decoder := bin.NewBinDecoder(info.Value.Data.GetBinary())
		if err := mintAccount.UnmarshalWithDecoder(decoder); err != nil {
			log.Debugf("decimals decode failed for %s, defaulting to %d: %v", mint, DefaultDecimals, err)
			return uint8(DefaultDecimals), nil
		}
		return mintAccount.Decimals, nil
	})
	return v.(uint8)
}

// Symbol resolves the token-metadata symbol for mint, defaulting to
// DefaultSymbol on any failure.
func (c *Client) Symbol(ctx context.Context, mint string) string {
	v, _, _ := c.group.Do("symbol:"+mint, func() (interface{}, error) {
		pub, err := solana.PublicKeyFromBase58(mint)
		if err != nil {
			return DefaultSymbol, nil
		}
		pda, _, err := solana.FindProgramAddress(
			[][]byte{[]byte("metadata"), metadataProgramID.Bytes(), pub.Bytes()},
			metadataProgramID,
		)
		if err != nil {
			return DefaultSymbol, nil
		}
		info, err := c.rpc.GetAccountInfo(ctx, pda)
		if err != nil || info == nil || info.Value == nil {
			log.Debugf("symbol lookup failed for %s, defaulting to %q: %v", mint, DefaultSymbol, err)
			return DefaultSymbol, nil
		}
		symbol, ok := decodeMetadataSymbol(info.Value.Data.GetBinary())
		if !ok {
			return DefaultSymbol, nil
		}
		return symbol, nil
	})
	return v.(string)
}

// VrtMint resolves a vault account's vrt_mint field. Unlike Decimals and
// Symbol, failure here is propagated: there is no reasonable default mint
// address, so the caller must skip this action's USD/raw conversion
// entirely rather than evaluate against a wrong mint.
func (c *Client) VrtMint(ctx context.Context, vault string) (string, error) {
	pub, err := solana.PublicKeyFromBase58(vault)
	if err != nil {
		return "", berr.New(berr.Rpc, err)
	}
	info, err := c.rpc.GetAccountInfo(ctx, pub)
	if err != nil {
		return "", berr.New(berr.Rpc, err)
	}
	if info == nil || info.Value == nil {
		return "", berr.Newf(berr.Rpc, "vault account %s not found", vault)
	}
	vrtMint, ok := decodeVaultVrtMint(info.Value.Data.GetBinary())
	if !ok {
		return "", berr.Newf(berr.Rpc, "vault account %s too short to decode vrt_mint", vault)
	}
	return vrtMint, nil
}

// EpochInfo resolves the current epoch and the number of slots per epoch,
// used by the stream consumer to seed its epoch-rollup tracker and detect
// epoch boundaries without hard-coding Solana's schedule.
func (c *Client) EpochInfo(ctx context.Context) (epoch uint64, slotsPerEpoch uint64, err error) {
	info, err := c.rpc.GetEpochInfo(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, 0, berr.New(berr.Rpc, err)
	}
	return info.Epoch, info.SlotsInEpoch, nil
}

// decodeVaultVrtMint reads the vrt_mint pubkey field from a Jito Vault
// account. The vault layout begins with an 8-byte anchor-style
// discriminator; vrt_mint is the first pubkey field after it.
func decodeVaultVrtMint(data []byte) (string, bool) {
	const discriminatorLen = 8
	if len(data) < discriminatorLen+32 {
		return "", false
	}
	return solana.PublicKeyFromBytes(data[discriminatorLen : discriminatorLen+32]).String(), true
}

// decodeMetadataSymbol parses the Metaplex Metadata account's fixed
// prefix (key byte, update authority, mint) followed by the Borsh
// length-prefixed name and symbol strings, returning the symbol.
func decodeMetadataSymbol(data []byte) (string, bool) {
	offset := 1 + 32 + 32
	if len(data) < offset+4 {
		return "", false
	}
	nameLen := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
	offset += 4 + nameLen
	if len(data) < offset+4 {
		return "", false
	}
	symbolLen := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
	offset += 4
	if len(data) < offset+symbolLen {
		return "", false
	}
	return string(data[offset : offset+symbolLen]), true
}
