package carousel

import (
	"context"
	"sync"
	"time"

	"mobileHospital/pkg/logger"
	"mobileHospital/pkg/metrics"
)

// Ticker advances the banner index every interval. With no banners it is
// not scheduled at all.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	count    int
	index    int

	restart  chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewTicker(interval time.Duration, count int) *Ticker {
	return &Ticker{
		interval: interval,
		count:    count,
		restart:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Run blocks until ctx is cancelled or Stop is called.
func (t *Ticker) Run(ctx context.Context) {
	var (
		ticker *time.Ticker
		tick   <-chan time.Time
	)

	schedule := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
		if t.Count() > 0 {
			ticker = time.NewTicker(t.interval)
			tick = ticker.C
		}
	}

	schedule()
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.done:
			return
		case <-t.restart:
			schedule()
		case <-tick:
			t.Tick()
		}
	}
}

// Tick moves to the next banner and returns the new index.
func (t *Ticker) Tick() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count == 0 {
		return t.index
	}

	t.index = (t.index + 1) % t.count
	metrics.CarouselIndex.Set(float64(t.index))
	return t.index
}

// Reset is called when the banner count changes. The index goes back to the
// first banner and the timer is rescheduled.
func (t *Ticker) Reset(count int) {
	t.mu.Lock()
	t.count = count
	t.index = 0
	t.mu.Unlock()

	metrics.CarouselIndex.Set(0)
	logger.Debug("carousel reset", "banners", count)

	select {
	case t.restart <- struct{}{}:
	default:
	}
}

func (t *Ticker) Index() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.index
}

func (t *Ticker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
	})
}
