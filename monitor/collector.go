package monitor

import (
	"math"

	sysmon "github.com/tatsumon/go-sysmon"
)

// collector reads one metrics domain and produces a fresh snapshot.
// A collector belongs to a single owner and is never called
// concurrently; any warm-up state it accumulates, such as the network
// rate baseline, is discarded together with the collector.
type collector[T any] interface {
	Collect() (T, error)
}

// collectorSet groups one collector per domain. Every sampler session
// and every one-shot refresh operates on its own fresh set.
type collectorSet struct {
	cpu     collector[sysmon.CPUSnapshot]
	memory  collector[sysmon.MemorySnapshot]
	disk    collector[sysmon.DiskSnapshot]
	network collector[sysmon.NetworkSnapshot]
}

// collectorFactory produces a fresh collectorSet.
type collectorFactory func() collectorSet

func newCollectorSet() collectorSet {
	return collectorSet{
		cpu:     newCPUCollector(),
		memory:  newMemoryCollector(),
		disk:    newDiskCollector(),
		network: newNetworkCollector(),
	}
}

// clampPercent normalizes a percentage to the [0, 100] range.
// NaN and infinities map to 0.
func clampPercent(value float64) float64 {
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		return 0
	case value < 0:
		return 0
	case value > 100:
		return 100
	}
	return value
}

// usagePercent returns used/total as a percentage, 0 when total is 0.
func usagePercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return clampPercent(float64(used) / float64(total) * 100)
}

// saturatingSub returns a-b, flooring at 0 instead of wrapping when
// b exceeds a.
func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
