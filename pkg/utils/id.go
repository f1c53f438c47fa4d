package utils

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator hands out record ids derived from the current time in millis.
// Two ids issued within the same millisecond, or a token already present in
// the target collection, get a random suffix instead.
type IDGenerator struct {
	mu         sync.Mutex
	now        func() time.Time
	lastToken  string
	lastMillis int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// NewIDGeneratorWithClock is NewIDGenerator with an injected clock.
func NewIDGeneratorWithClock(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

// Next returns a fresh id and a createdAt timestamp in epoch millis that never
// goes backwards across calls. inUse may be nil.
func (g *IDGenerator) Next(inUse func(id string) bool) (string, int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis < g.lastMillis {
		millis = g.lastMillis
	}

	base := strconv.FormatInt(millis, 10)
	token := base
	sameTick := g.lastToken != "" && millis == g.lastMillis
	for sameTick || (inUse != nil && inUse(token)) {
		token = base + "-" + uuid.NewString()[:8]
		sameTick = false
	}

	g.lastToken = token
	g.lastMillis = millis

	return token, millis
}
