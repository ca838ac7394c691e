package eventdecode

import (
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func u64le(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// buildRebalanceBody mirrors Scenario 6: vote pubkey, epoch 3, Increase
// kind, increase=2 SOL worth of lamports, all-zero decrease breakdown.
func buildRebalanceBody(vote [32]byte, epoch uint64, kind RebalanceKind, increase uint64) []byte {
	body := append([]byte{}, vote[:]...)
	body = append(body, u64le(epoch)...)
	body = append(body, byte(kind))
	body = append(body, u64le(increase)...)
	body = append(body, make([]byte, 8*4)...) // zeroed decrease breakdown
	return body
}

func TestDecodeRebalanceLogLine(t *testing.T) {
	var vote [32]byte
	for i := range vote {
		vote[i] = byte(i)
	}
	body := buildRebalanceBody(vote, 3, RebalanceIncrease, 2_000_000_000)
	payload := append(append([]byte{}, discRebalance[:]...), body...)
	line := "Program data: " + base64.StdEncoding.EncodeToString(payload)

	event, ok := DecodeLogLine(line)
	require.True(t, ok)

	rebalance, isRebalance := event.(Rebalance)
	require.True(t, isRebalance)
	require.Equal(t, uint64(3), rebalance.Epoch)
	require.Equal(t, RebalanceIncrease, rebalance.Kind)
	require.Equal(t, uint64(2_000_000_000), rebalance.IncreaseLamports)
	require.Equal(t, DecreaseBreakdown{}, rebalance.Decrease)
}

func TestDecodeLogLineWrongPrefix(t *testing.T) {
	_, ok := DecodeLogLine("not a program log line")
	require.False(t, ok)
}

func TestDecodeLogLineBadBase64(t *testing.T) {
	_, ok := DecodeLogLine("Program log: not-base64!!!")
	require.False(t, ok)
}

func TestDecodeLogLineTooShort(t *testing.T) {
	short := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
	_, ok := DecodeLogLine("Program log: " + short)
	require.False(t, ok)
}

func TestDecodeLogLineUnknownDiscriminator(t *testing.T) {
	payload := append([]byte{1, 2, 3, 4, 5, 6, 7, 8}, make([]byte, 40)...)
	line := "Program data: " + base64.StdEncoding.EncodeToString(payload)
	_, ok := DecodeLogLine(line)
	require.False(t, ok)
}

func TestDecodeStateTransition(t *testing.T) {
	body := append(u64le(10), u64le(5000)...)
	body = append(body, 2, 3) // previous, new
	payload := append(append([]byte{}, discStateTransition[:]...), body...)
	line := "Program data: " + base64.StdEncoding.EncodeToString(payload)

	event, ok := DecodeLogLine(line)
	require.True(t, ok)
	require.Equal(t, StateTransition{Epoch: 10, Slot: 5000, Previous: 2, New: 3}, event)
}

// TestAllPlaceholderDiscriminatorsDecode covers the forward-compatibility
// requirement: every documented discriminator must be decodable even
// though most are never evaluated.
func TestAllPlaceholderDiscriminatorsDecode(t *testing.T) {
	placeholders := [][8]byte{
		discDirectedRebalance, discAutoAddValidator, discAutoRemoveValidator,
		discEpochMaintenance, discDecreaseComponents, discScoreComponents,
		discInstantUnstakeComponents,
	}
	for _, disc := range placeholders {
		payload := append(append([]byte{}, disc[:]...), []byte("arbitrary body")...)
		line := "Program log: " + base64.StdEncoding.EncodeToString(payload)
		_, ok := DecodeLogLine(line)
		require.True(t, ok, "discriminator %v should decode", disc)
	}
}
