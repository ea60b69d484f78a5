package locks

import (
	"context"
	"sync"
)

// Memory is an in-process Locker. Waiters honour context cancellation.
type Memory struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch      chan struct{}
	waiters int
}

func NewMemory() *Memory {
	return &Memory{slots: map[string]*slot{}}
}

func (m *Memory) Lock(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	s, ok := m.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		m.slots[key] = s
	}
	s.waiters++
	m.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		m.release(key, s, false)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { m.release(key, s, true) })
	}, nil
}

func (m *Memory) release(key string, s *slot, held bool) {
	if held {
		<-s.ch
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s.waiters--
	if s.waiters == 0 {
		delete(m.slots, key)
	}
}
