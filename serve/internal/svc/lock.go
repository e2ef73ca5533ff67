package svc

import (
	"sync"

	"github.com/HuXin0817/painting/pkg/models/message"
)

// Locker serialises every request on one painting.
type Locker interface {
	Do(f func() error) error
}

type MemoryLocks struct {
	mu    sync.Mutex
	locks map[message.PaintingUid]*memoryLock
}

func NewMemoryLocks() *MemoryLocks {
	return &MemoryLocks{locks: make(map[message.PaintingUid]*memoryLock)}
}

func (m *MemoryLocks) Lock(uid message.PaintingUid) Locker {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.locks[uid]
	if !ok {
		l = &memoryLock{}
		m.locks[uid] = l
	}
	return l
}

type memoryLock struct {
	sync.Mutex
}

func (l *memoryLock) Do(f func() error) error {
	l.Lock()
	defer l.Unlock()

	return f()
}
