package monitor

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"

	sysmon "github.com/tatsumon/go-sysmon"
	"github.com/tatsumon/go-sysmon/internal/hostprobe"
)

// diskCollector reads capacity and usage of every mounted volume.
type diskCollector struct {
	partitions func(all bool) ([]disk.PartitionStat, error)
	usage      func(path string) (*disk.UsageStat, error)
	removable  func(device string) bool
}

func newDiskCollector() *diskCollector {
	return &diskCollector{
		partitions: disk.Partitions,
		usage:      disk.Usage,
		removable:  hostprobe.Removable,
	}
}

// Collect re-enumerates the mount table on every call, so volumes
// that appear or disappear between readings are picked up naturally.
// Removable media count toward the aggregate totals like any other
// volume.
func (c *diskCollector) Collect() (sysmon.DiskSnapshot, error) {
	partitions, err := c.partitions(false)
	if err != nil {
		return sysmon.DiskSnapshot{}, fmt.Errorf("enumerate mounted volumes: %w", err)
	}

	snapshot := sysmon.DiskSnapshot{
		Disks: make([]sysmon.DiskDetail, 0, len(partitions)),
	}
	for _, partition := range partitions {
		usage, err := c.usage(partition.Mountpoint)
		if err != nil {
			// Mounts the process cannot stat, e.g. another user's
			// FUSE volume, are skipped.
			continue
		}

		available := usage.Free
		used := saturatingSub(usage.Total, available)
		snapshot.Disks = append(snapshot.Disks, sysmon.DiskDetail{
			Name:         partition.Device,
			MountPoint:   partition.Mountpoint,
			FileSystem:   partition.Fstype,
			Total:        usage.Total,
			Used:         used,
			Available:    available,
			UsagePercent: usagePercent(used, usage.Total),
			Removable:    c.removable(partition.Device),
		})

		snapshot.Total += usage.Total
		snapshot.TotalUsed += used
		snapshot.TotalAvailable += available
	}
	snapshot.TotalUsagePercent = usagePercent(snapshot.TotalUsed, snapshot.Total)

	return snapshot, nil
}
