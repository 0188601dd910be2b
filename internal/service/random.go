package service

import (
	"math/rand"
	"sync"
	"time"
)

// Picker chooses an index in [0, n).
type Picker interface {
	Intn(n int) int
}

// LockedRand is a seedable Picker safe for concurrent use.
type LockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand seeds from the clock when seed is 0.
func NewLockedRand(seed int64) *LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}

// pickString returns a random element of items, or fallback when items is empty.
func pickString(p Picker, items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return items[p.Intn(len(items))]
}
