package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPopOrder(t *testing.T) {
	q := NewConcurrentQueue(4)
	q.Push(1)
	q.Push(2)
	q.Push(3)

	for _, want := range []int{1, 2, 3} {
		got, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestPopBlocksUntilPush(t *testing.T) {
	q := NewConcurrentQueue(0)

	var wg sync.WaitGroup
	wg.Add(1)
	var got interface{}
	go func() {
		defer wg.Done()
		got, _ = q.Pop()
	}()

	q.Push("hello")
	wg.Wait()
	require.Equal(t, "hello", got)
}

func TestCloseUnblocksPop(t *testing.T) {
	q := NewConcurrentQueue(0)

	done := make(chan bool, 1)
	go func() {
		_, ok := q.Pop()
		done <- ok
	}()

	q.Close()
	require.False(t, <-done)
}

func TestPushAfterCloseIsNoop(t *testing.T) {
	q := NewConcurrentQueue(0)
	q.Close()
	q.Push(1)

	_, ok := q.Pop()
	require.False(t, ok)
}
