package utils

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_SameMillisecondGetsSuffix(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	g := NewIDGeneratorWithClock(func() time.Time { return fixed })

	first, firstAt := g.Next(nil)
	second, secondAt := g.Next(nil)

	assert.Equal(t, "1700000000000", first)
	assert.True(t, strings.HasPrefix(second, "1700000000000-"))
	assert.Len(t, second, len("1700000000000-")+8)
	assert.NotEqual(t, first, second)
	assert.Equal(t, firstAt, secondAt)
}

func TestIDGenerator_InUseTokenGetsSuffix(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	g := NewIDGeneratorWithClock(func() time.Time { return now })

	id, _ := g.Next(func(id string) bool { return id == "1700000000000" })

	assert.True(t, strings.HasPrefix(id, "1700000000000-"))
}

func TestIDGenerator_CreatedAtNeverGoesBackwards(t *testing.T) {
	ticks := []int64{1000, 2000, 1500, 2500}
	i := 0
	g := NewIDGeneratorWithClock(func() time.Time {
		ms := ticks[i]
		i++
		return time.UnixMilli(ms)
	})

	var last int64
	for range ticks {
		_, at := g.Next(nil)
		assert.GreaterOrEqual(t, at, last)
		last = at
	}
	assert.Equal(t, int64(2500), last)
}

func TestIDGenerator_ConcurrentCallersGetUniqueIDs(t *testing.T) {
	g := NewIDGenerator()

	const n = 200
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := g.Next(nil)
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, n)
}
