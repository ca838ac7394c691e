package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTestClockFiresOnAdvance(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewTestClock(start)

	ch := c.TickAfter(5 * time.Second)

	select {
	case <-ch:
		t.Fatal("tick fired before advance")
	default:
	}

	c.SetTime(start.Add(5 * time.Second))

	select {
	case fired := <-ch:
		require.Equal(t, start.Add(5*time.Second), fired)
	default:
		t.Fatal("tick did not fire after advance")
	}
}

func TestDefaultClockNow(t *testing.T) {
	c := NewDefaultClock()
	before := time.Now()
	now := c.Now()
	require.False(t, now.Before(before))
}
