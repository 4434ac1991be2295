package monitor

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	sysmon "github.com/tatsumon/go-sysmon"
)

// memoryCollector reads physical and swap memory state.
type memoryCollector struct {
	virtualMemory func() (*mem.VirtualMemoryStat, error)
	swapMemory    func() (*mem.SwapMemoryStat, error)
}

func newMemoryCollector() *memoryCollector {
	return &memoryCollector{
		virtualMemory: mem.VirtualMemory,
		swapMemory:    mem.SwapMemory,
	}
}

func (c *memoryCollector) Collect() (sysmon.MemorySnapshot, error) {
	virtual, err := c.virtualMemory()
	if err != nil {
		return sysmon.MemorySnapshot{}, fmt.Errorf("read virtual memory: %w", err)
	}

	snapshot := sysmon.MemorySnapshot{
		Total:        virtual.Total,
		Used:         virtual.Used,
		Available:    virtual.Available,
		UsagePercent: usagePercent(virtual.Used, virtual.Total),
	}

	// Hosts without a swap device must not fail the whole domain;
	// swap fields stay zero when the read errs.
	if swap, err := c.swapMemory(); err == nil {
		snapshot.SwapTotal = swap.Total
		snapshot.SwapUsed = swap.Used
		snapshot.SwapUsagePercent = usagePercent(swap.Used, swap.Total)
	}

	return snapshot, nil
}
