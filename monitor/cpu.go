package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/sensors"

	sysmon "github.com/tatsumon/go-sysmon"
)

// cpuCollector reads processor state: per-core utilization, model
// identification, clock frequencies, the physical core count, and the
// package temperature where the host exposes a sensor.
type cpuCollector struct {
	percents     func(interval time.Duration, percpu bool) ([]float64, error)
	info         func() ([]cpu.InfoStat, error)
	counts       func(logical bool) (int, error)
	temperatures func() ([]sensors.TemperatureStat, error)
}

func newCPUCollector() *cpuCollector {
	c := &cpuCollector{
		percents:     cpu.Percent,
		info:         cpu.Info,
		counts:       cpu.Counts,
		temperatures: sensors.SensorsTemperatures,
	}
	// Prime the utilization baseline so the first Collect measures
	// the delta since construction rather than since process start.
	_, _ = c.percents(0, true)
	return c
}

func (c *cpuCollector) Collect() (sysmon.CPUSnapshot, error) {
	percents, err := c.percents(0, true)
	if err != nil {
		return sysmon.CPUSnapshot{}, fmt.Errorf("read core utilization: %w", err)
	}

	// Identification data is decorative; failures degrade to zero
	// values instead of failing the collection.
	infos, err := c.info()
	if err != nil {
		infos = nil
	}

	snapshot := sysmon.CPUSnapshot{
		Cores: make([]sysmon.CoreInfo, len(percents)),
	}
	if len(infos) > 0 {
		snapshot.Brand = infos[0].ModelName
	}

	var totalUsage float64
	for i, percent := range percents {
		usage := clampPercent(percent)
		totalUsage += usage
		snapshot.Cores[i] = sysmon.CoreInfo{
			Name:      fmt.Sprintf("cpu%d", i),
			Usage:     usage,
			Frequency: coreFrequency(infos, i),
		}
	}
	if len(percents) > 0 {
		snapshot.TotalUsage = clampPercent(totalUsage / float64(len(percents)))
	}

	if count, err := c.counts(false); err == nil && count > 0 {
		snapshot.PhysicalCores = &count
	}
	snapshot.Temperature = c.readTemperature()

	return snapshot, nil
}

// coreFrequency returns the clock of the given core in MHz: the
// matching entry when the host reports one InfoStat per logical core,
// the first entry otherwise, 0 when no identification is available.
func coreFrequency(infos []cpu.InfoStat, index int) uint64 {
	if index < len(infos) {
		return uint64(infos[index].Mhz)
	}
	if len(infos) > 0 {
		return uint64(infos[0].Mhz)
	}
	return 0
}

// readTemperature scans the hardware sensors for a key that plausibly
// belongs to the processor. Sensor naming varies by platform, so any
// key containing "cpu", "core" or "package" qualifies; when none
// matches, the first sensor present is used. Hosts without sensors,
// and environments where the read fails, yield nil.
func (c *cpuCollector) readTemperature() *float64 {
	stats, err := c.temperatures()
	if err != nil || len(stats) == 0 {
		return nil
	}
	for _, stat := range stats {
		key := strings.ToLower(stat.SensorKey)
		if strings.Contains(key, "cpu") ||
			strings.Contains(key, "core") ||
			strings.Contains(key, "package") {
			temperature := stat.Temperature
			return &temperature
		}
	}
	temperature := stats[0].Temperature
	return &temperature
}
