package app

import (
	"context"
	"sync"
)

// mount ties a view's fetches to its lifetime. Each load runs under a
// generation; results from an older generation or after unmount are dropped.
// mu also guards the embedding view's state.
type mount struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// begin starts a new generation, cancelling any load still in flight.
// prepare runs under the lock so the view can reset its state atomically.
func (m *mount) begin(parent context.Context, prepare func()) (context.Context, uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
	}
	m.gen++
	ctx, cancel := context.WithCancel(parent)
	m.cancel = cancel
	if prepare != nil {
		prepare()
	}
	return ctx, m.gen
}

// commit applies a load result if gen is still current.
func (m *mount) commit(gen uint64, apply func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return false
	}
	apply()
	return true
}

// Unmount cancels in-flight loads and invalidates their results.
func (m *mount) Unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
