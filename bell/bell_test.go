package bell

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jito-foundation/bell/config"
	"github.com/jito-foundation/bell/evaluator"
	"github.com/jito-foundation/bell/geyser"
	"github.com/jito-foundation/bell/metrics"
	"github.com/jito-foundation/bell/sinks"
)

type fakeStream struct {
	updates chan geyser.Update
	err     error
}

func (f *fakeStream) Updates() <-chan geyser.Update { return f.updates }
func (f *fakeStream) Err() error                    { return f.err }
func (f *fakeStream) Close() error                  { return nil }

type fakeClient struct {
	stream *fakeStream
}

func (f *fakeClient) Subscribe(ctx context.Context, req geyser.SubscribeRequest) (geyser.Stream, error) {
	return f.stream, nil
}
func (f *fakeClient) Close() error { return nil }

func TestBellStartStopCleanExit(t *testing.T) {
	stream := &fakeStream{updates: make(chan geyser.Update)}
	client := &fakeClient{stream: stream}

	cfg := &config.Config{MessageTemplates: map[string]string{"default": "{{description}}"}}
	eval := evaluator.New(cfg, nil, nil, map[config.Destination]sinks.Sink{}, metrics.NewTracker(0), nil)

	b := New(client, eval, metrics.NewTracker(0), nil, 432000, nil)
	require.NoError(t, b.Start(context.Background()))

	require.NoError(t, b.Stop())
}

func TestBellCountsTransactionArrivalRegardlessOfStatus(t *testing.T) {
	stream := &fakeStream{updates: make(chan geyser.Update, 1)}
	client := &fakeClient{stream: stream}

	cfg := &config.Config{MessageTemplates: map[string]string{"default": "{{description}}"}}
	eval := evaluator.New(cfg, nil, nil, map[config.Destination]sinks.Sink{}, metrics.NewTracker(0), nil)
	tracker := metrics.NewTracker(0)

	b := New(client, eval, tracker, nil, 432000, nil)
	require.NoError(t, b.Start(context.Background()))

	stream.updates <- geyser.Update{Transaction: &geyser.TransactionUpdate{Success: false}}

	require.Eventually(t, func() bool {
		return tracker.Snapshot().TxCount == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, b.Stop())
}

func TestProgramIDsCollectsNonEmptyOnly(t *testing.T) {
	cfg := &config.Config{
		Programs: map[config.ProgramKind]config.Program{
			config.ProgramSplStakePool: {ProgramID: "a"},
			config.ProgramJitoVault:    {ProgramID: ""},
		},
	}
	ids := ProgramIDs(cfg)
	require.Equal(t, []string{"a"}, ids)
}
