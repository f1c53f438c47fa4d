package carousel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTick_CyclesBackAfterNTicks(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		ticker := NewTicker(time.Hour, n)
		start := ticker.Index()

		for i := 0; i < n; i++ {
			ticker.Tick()
		}

		assert.Equal(t, start, ticker.Index(), "n=%d", n)
	}
}

func TestTick_NoBannersIsInert(t *testing.T) {
	ticker := NewTicker(time.Hour, 0)

	assert.NotPanics(t, func() {
		for i := 0; i < 3; i++ {
			ticker.Tick()
		}
	})
	assert.Equal(t, 0, ticker.Index())
}

func TestReset_RewindsIndex(t *testing.T) {
	ticker := NewTicker(time.Hour, 3)
	ticker.Tick()
	ticker.Tick()
	assert.Equal(t, 2, ticker.Index())

	ticker.Reset(2)
	assert.Equal(t, 0, ticker.Index())
	assert.Equal(t, 2, ticker.Count())

	assert.Equal(t, 1, ticker.Tick())
	assert.Equal(t, 0, ticker.Tick())
}

func TestRun_AdvancesOnInterval(t *testing.T) {
	ticker := NewTicker(5*time.Millisecond, 3)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return ticker.Index() != 0 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_UnscheduledUntilBannersExist(t *testing.T) {
	ticker := NewTicker(5*time.Millisecond, 0)

	done := make(chan struct{})
	go func() {
		ticker.Run(context.Background())
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, ticker.Index())

	ticker.Reset(2)
	assert.Eventually(t, func() bool { return ticker.Index() == 1 }, time.Second, time.Millisecond)

	ticker.Stop()
	ticker.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
