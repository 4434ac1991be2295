package monitor

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	sysmon "github.com/tatsumon/go-sysmon"
)

const (
	// tickInterval is the base scheduling quantum of the worker loop.
	// Domain intervals are quantized up to the next tick boundary, so
	// each domain carries up to one tick of scheduling jitter.
	tickInterval = 100 * time.Millisecond

	// settleDelay separates CPU collector construction from its first
	// reading. Utilization is a delta between two samples and needs
	// time between them to be meaningful.
	settleDelay = 100 * time.Millisecond
)

// Monitor samples host metrics on a single background goroutine,
// multiplexing the four domain collectors onto one scheduler, and
// caches the latest snapshot of every domain for concurrent readers.
//
// A Monitor is inert after construction; Start launches the sampling
// session and Stop (or Close) terminates it. Accessors are safe at
// any point of the lifecycle and return zero-valued snapshots before
// the first collection.
type Monitor struct {
	config sysmon.Config
	logger zerolog.Logger

	state      *state
	collectors collectorFactory

	// mu serializes session transitions; the running flag flips only
	// while mu is held, so a Start racing a concurrent Stop can never
	// leak a second worker or join a half-built session.
	mu   sync.Mutex
	done chan struct{}
	wg   sync.WaitGroup
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithLogger sets the structured logger used for lifecycle and
// collection-failure events. The default is zerolog.Nop, keeping the
// monitor silent unless a consumer opts in.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Monitor) {
		m.logger = logger
	}
}

// New creates a Monitor with the given configuration. The
// configuration is captured at this point; later changes to it have
// no effect. No host probing happens until Start or RefreshAll.
func New(config sysmon.Config, opts ...Option) *Monitor {
	m := &Monitor{
		config:     config,
		logger:     zerolog.Nop(),
		state:      newState(),
		collectors: newCollectorSet,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start launches the background sampling goroutine. Calling Start on
// a running monitor is a no-op; a second worker is never spawned.
// Each call that does start a session builds fresh collectors, so a
// restarted monitor begins with a clean network rate baseline.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.running.CompareAndSwap(false, true) {
		return
	}

	m.done = make(chan struct{})
	m.wg.Add(1)
	go m.run(m.done)

	m.logger.Debug().
		Dur("cpu_interval", m.config.CPUInterval).
		Dur("memory_interval", m.config.MemoryInterval).
		Dur("disk_interval", m.config.DiskInterval).
		Dur("network_interval", m.config.NetworkInterval).
		Msg("monitor started")
}

// Stop terminates the sampling session and blocks until the worker
// goroutine has exited. Calling Stop on a stopped monitor, or before
// any Start, is a no-op. The cached snapshots remain readable.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.running.CompareAndSwap(true, false) {
		return
	}

	close(m.done)
	m.done = nil
	m.wg.Wait()

	m.logger.Debug().Msg("monitor stopped")
}

// Close stops the monitor. It implements io.Closer and never returns
// an error.
func (m *Monitor) Close() error {
	m.Stop()
	return nil
}

// IsRunning reports whether a sampling session is active.
func (m *Monitor) IsRunning() bool {
	return m.state.running.Load()
}

// run is the worker loop: one goroutine multiplexing all domains.
// Every domain starts due immediately; after each pass the loop
// sleeps one base tick and counts every domain down by it, flooring
// at zero. A domain interval at or below the tick therefore collects
// on every pass.
func (m *Monitor) run(done <-chan struct{}) {
	defer m.wg.Done()

	collectors := m.collectors()

	// Let the CPU baseline primed at construction age, so the first
	// reading is a real delta.
	settle := time.NewTimer(settleDelay)
	defer settle.Stop()
	select {
	case <-settle.C:
	case <-done:
		return
	}

	var cpuLeft, memoryLeft, diskLeft, networkLeft time.Duration

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		if cpuLeft <= 0 {
			collectInto(m.logger, "cpu", collectors.cpu, &m.state.cpu)
			cpuLeft = m.config.CPUInterval
		}
		if memoryLeft <= 0 {
			collectInto(m.logger, "memory", collectors.memory, &m.state.memory)
			memoryLeft = m.config.MemoryInterval
		}
		if diskLeft <= 0 {
			collectInto(m.logger, "disk", collectors.disk, &m.state.disk)
			diskLeft = m.config.DiskInterval
		}
		if networkLeft <= 0 {
			collectInto(m.logger, "network", collectors.network, &m.state.network)
			networkLeft = m.config.NetworkInterval
		}

		select {
		case <-ticker.C:
		case <-done:
			return
		}

		cpuLeft = tickDown(cpuLeft)
		memoryLeft = tickDown(memoryLeft)
		diskLeft = tickDown(diskLeft)
		networkLeft = tickDown(networkLeft)
	}
}

// tickDown subtracts one base tick from a countdown, flooring at zero.
func tickDown(remaining time.Duration) time.Duration {
	if remaining <= tickInterval {
		return 0
	}
	return remaining - tickInterval
}

// collectInto runs one collection and publishes the result. On error
// the previously published snapshot is kept; the countdown still
// resets, so a failing domain retries at its regular cadence.
func collectInto[T cloneable[T]](logger zerolog.Logger, domain string, c collector[T], s *slot[T]) {
	snapshot, err := c.Collect()
	if err != nil {
		logger.Warn().Err(err).Str("domain", domain).Msg("metrics collection failed")
		return
	}
	s.store(snapshot)
}

// CPU returns a copy of the latest processor snapshot.
func (m *Monitor) CPU() sysmon.CPUSnapshot {
	return m.state.cpu.load()
}

// Memory returns a copy of the latest memory snapshot.
func (m *Monitor) Memory() sysmon.MemorySnapshot {
	return m.state.memory.load()
}

// Disk returns a copy of the latest storage snapshot.
func (m *Monitor) Disk() sysmon.DiskSnapshot {
	return m.state.disk.load()
}

// Network returns a copy of the latest network snapshot.
func (m *Monitor) Network() sysmon.NetworkSnapshot {
	return m.state.network.load()
}

// Snapshot assembles copies of all four domain snapshots along with a
// capture timestamp in Unix epoch milliseconds. Each domain slot is
// read independently, so a concurrent collection may land between two
// reads; every individual domain is still internally consistent.
func (m *Monitor) Snapshot() sysmon.SystemSnapshot {
	return sysmon.SystemSnapshot{
		CPU:       m.CPU(),
		Memory:    m.Memory(),
		Disk:      m.Disk(),
		Network:   m.Network(),
		Timestamp: time.Now().UnixMilli(),
	}
}

// RefreshAll synchronously collects every domain on the calling
// goroutine, using disposable collectors that never touch the
// background worker's warm-up state. The disposable network collector
// has no rate baseline, so the published network snapshot reports
// zero transfer rates alongside real cumulative counters. The monitor
// does not need to be running; results land in the same slots the
// accessors read.
func (m *Monitor) RefreshAll() {
	collectors := m.collectors()

	time.Sleep(settleDelay)
	collectInto(m.logger, "cpu", collectors.cpu, &m.state.cpu)
	collectInto(m.logger, "memory", collectors.memory, &m.state.memory)
	collectInto(m.logger, "disk", collectors.disk, &m.state.disk)
	collectInto(m.logger, "network", collectors.network, &m.state.network)
}

// CollectOnce performs a single synchronous collection of all domains
// with default settings and returns the assembled snapshot. It is a
// convenience for probes and one-shot commands that do not want to
// manage a Monitor lifecycle.
func CollectOnce() sysmon.SystemSnapshot {
	m := New(sysmon.DefaultConfig())
	m.RefreshAll()
	return m.Snapshot()
}
