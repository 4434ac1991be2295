package monitor

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/net"

	sysmon "github.com/tatsumon/go-sysmon"
)

// rateBaseline remembers the cumulative counters of one interface and
// the instant they were read, for deriving transfer rates on the next
// reading.
type rateBaseline struct {
	received    uint64
	transmitted uint64
	when        time.Time
}

// networkCollector reads per-interface traffic counters and derives
// instantaneous transfer rates from the previous reading. A freshly
// constructed collector has no baseline, so its first reading reports
// zero rates alongside the real cumulative counters.
type networkCollector struct {
	counters func(pernic bool) ([]net.IOCountersStat, error)
	now      func() time.Time

	baselines map[string]rateBaseline
}

func newNetworkCollector() *networkCollector {
	return &networkCollector{
		counters:  net.IOCounters,
		now:       time.Now,
		baselines: make(map[string]rateBaseline),
	}
}

func (c *networkCollector) Collect() (sysmon.NetworkSnapshot, error) {
	counters, err := c.counters(true)
	if err != nil {
		return sysmon.NetworkSnapshot{}, fmt.Errorf("read interface counters: %w", err)
	}

	now := c.now()
	snapshot := sysmon.NetworkSnapshot{
		Interfaces: make([]sysmon.InterfaceInfo, 0, len(counters)),
	}
	for _, counter := range counters {
		var uploadBps, downloadBps uint64
		if baseline, ok := c.baselines[counter.Name]; ok {
			// Saturating deltas keep counter resets, e.g. an
			// interface that disappeared and came back, at zero
			// instead of wrapping.
			if elapsed := now.Sub(baseline.when).Seconds(); elapsed > 0 {
				downloadBps = uint64(float64(saturatingSub(counter.BytesRecv, baseline.received)) / elapsed)
				uploadBps = uint64(float64(saturatingSub(counter.BytesSent, baseline.transmitted)) / elapsed)
			}
		}
		c.baselines[counter.Name] = rateBaseline{
			received:    counter.BytesRecv,
			transmitted: counter.BytesSent,
			when:        now,
		}

		snapshot.Interfaces = append(snapshot.Interfaces, sysmon.InterfaceInfo{
			Name:            counter.Name,
			UploadBps:       uploadBps,
			DownloadBps:     downloadBps,
			TotalUploaded:   counter.BytesSent,
			TotalDownloaded: counter.BytesRecv,
		})

		snapshot.TotalUploadBps += uploadBps
		snapshot.TotalDownloadBps += downloadBps
		snapshot.TotalUploaded += counter.BytesSent
		snapshot.TotalDownloaded += counter.BytesRecv
	}

	return snapshot, nil
}
