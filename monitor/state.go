package monitor

import (
	"sync"
	"sync/atomic"

	sysmon "github.com/tatsumon/go-sysmon"
)

// cloneable is satisfied by snapshot types that deep-copy themselves.
type cloneable[T any] interface {
	Clone() T
}

// slot holds one domain snapshot behind its own read-write lock.
// Readers always receive a clone, so no caller ever aliases the
// stored value. Unlocking is deferred; a panicking Clone cannot leave
// the lock held.
type slot[T cloneable[T]] struct {
	mu    sync.RWMutex
	value T
}

func (s *slot[T]) store(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
}

func (s *slot[T]) load() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value.Clone()
}

// state is the shared snapshot store. Each domain occupies an
// independently lockable slot, so publishing a slow disk reading
// never blocks a concurrent CPU read.
type state struct {
	cpu     slot[sysmon.CPUSnapshot]
	memory  slot[sysmon.MemorySnapshot]
	disk    slot[sysmon.DiskSnapshot]
	network slot[sysmon.NetworkSnapshot]

	running atomic.Bool
}

func newState() *state {
	s := &state{}
	// Pre-collection reads serialize the same shape as real ones:
	// empty collections, not JSON null.
	s.cpu.value = sysmon.CPUSnapshot{Cores: []sysmon.CoreInfo{}}
	s.disk.value = sysmon.DiskSnapshot{Disks: []sysmon.DiskDetail{}}
	s.network.value = sysmon.NetworkSnapshot{Interfaces: []sysmon.InterfaceInfo{}}
	return s
}
