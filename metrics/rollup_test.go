package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObserveNoRolloverWithinSameEpoch(t *testing.T) {
	tr := NewTracker(2)
	tr.IncTx()

	rolled, _ := tr.Observe(2*432000+100, 432000)
	require.False(t, rolled)
	require.Equal(t, uint64(1), tr.Snapshot().TxCount)
}

func TestObserveRolloverEmitsPreviousAndResets(t *testing.T) {
	tr := NewTracker(0)
	tr.IncTx()
	tr.IncTx()
	tr.IncSuccess()

	rolled, previous := tr.Observe(432000, 432000) // crosses into epoch 1
	require.True(t, rolled)
	require.Equal(t, uint64(0), previous.Epoch)
	require.Equal(t, uint64(2), previous.TxCount)
	require.Equal(t, uint64(1), previous.SuccessCount)

	// P4: the new generation starts at zero.
	snap := tr.Snapshot()
	require.Equal(t, uint64(1), snap.Epoch)
	require.Equal(t, uint64(0), snap.TxCount)
}

func TestObserveFirstRollAtProcessStart(t *testing.T) {
	tr := NewTracker(5)
	rolled, previous := tr.Observe(6*432000, 432000)
	require.True(t, rolled)
	require.Equal(t, Rollup{Epoch: 5}, previous)
}
