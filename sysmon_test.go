package sysmon_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	sysmon "github.com/tatsumon/go-sysmon"
	"github.com/tatsumon/go-sysmon/internal/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := sysmon.DefaultConfig()

	assert.Equal(t, config.CPUInterval, 5*time.Second)
	assert.Equal(t, config.MemoryInterval, 10*time.Second)
	assert.Equal(t, config.DiskInterval, 5*time.Minute)
	assert.Equal(t, config.NetworkInterval, 3*time.Second)
}

func TestCPUSnapshot_Clone(t *testing.T) {
	temperature := 54.5
	physicalCores := 4
	snapshot := sysmon.CPUSnapshot{
		Brand:      "ACME Hexacore",
		TotalUsage: 37.5,
		Cores: []sysmon.CoreInfo{
			{Name: "cpu0", Usage: 25.0, Frequency: 2400},
			{Name: "cpu1", Usage: 50.0, Frequency: 2400},
		},
		Temperature:   &temperature,
		PhysicalCores: &physicalCores,
	}

	clone := snapshot.Clone()
	assert.Equal(t, clone, snapshot)

	clone.Cores[0].Usage = 99.9
	*clone.Temperature = 80.0
	*clone.PhysicalCores = 1

	assert.Equal(t, snapshot.Cores[0].Usage, 25.0)
	assert.Equal(t, *snapshot.Temperature, 54.5)
	assert.Equal(t, *snapshot.PhysicalCores, 4)
}

func TestCPUSnapshot_CloneNilOptionals(t *testing.T) {
	clone := sysmon.CPUSnapshot{Brand: "ACME"}.Clone()

	assert.Nil(t, clone.Temperature)
	assert.Nil(t, clone.PhysicalCores)
	assert.Equal(t, len(clone.Cores), 0)
}

func TestDiskSnapshot_Clone(t *testing.T) {
	snapshot := sysmon.DiskSnapshot{
		Disks: []sysmon.DiskDetail{
			{Name: "/dev/sda1", MountPoint: "/", Total: 100, Used: 60, Available: 40},
		},
		Total:          100,
		TotalUsed:      60,
		TotalAvailable: 40,
	}

	clone := snapshot.Clone()
	clone.Disks[0].Used = 0

	assert.Equal(t, snapshot.Disks[0].Used, uint64(60))
	assert.Equal(t, clone.TotalUsed, snapshot.TotalUsed)
}

func TestNetworkSnapshot_Clone(t *testing.T) {
	snapshot := sysmon.NetworkSnapshot{
		Interfaces: []sysmon.InterfaceInfo{
			{Name: "eth0", UploadBps: 10, DownloadBps: 20},
		},
		TotalUploadBps:   10,
		TotalDownloadBps: 20,
	}

	clone := snapshot.Clone()
	clone.Interfaces[0].Name = "eth9"

	assert.Equal(t, snapshot.Interfaces[0].Name, "eth0")
}

func TestSystemSnapshot_Clone(t *testing.T) {
	snapshot := sysmon.SystemSnapshot{
		CPU: sysmon.CPUSnapshot{
			Cores: []sysmon.CoreInfo{{Name: "cpu0", Usage: 10}},
		},
		Disk: sysmon.DiskSnapshot{
			Disks: []sysmon.DiskDetail{{Name: "/dev/sda1"}},
		},
		Network: sysmon.NetworkSnapshot{
			Interfaces: []sysmon.InterfaceInfo{{Name: "eth0"}},
		},
		Timestamp: 1700000000000,
	}

	clone := snapshot.Clone()
	assert.Equal(t, clone, snapshot)

	clone.CPU.Cores[0].Usage = 100
	clone.Disk.Disks[0].Name = "/dev/sdz9"
	clone.Network.Interfaces[0].Name = "eth9"

	assert.Equal(t, snapshot.CPU.Cores[0].Usage, 10.0)
	assert.Equal(t, snapshot.Disk.Disks[0].Name, "/dev/sda1")
	assert.Equal(t, snapshot.Network.Interfaces[0].Name, "eth0")
}

func TestSystemSnapshot_JSONFieldNames(t *testing.T) {
	temperature := 42.0
	snapshot := sysmon.SystemSnapshot{
		CPU: sysmon.CPUSnapshot{
			Brand:       "ACME",
			Cores:       []sysmon.CoreInfo{{Name: "cpu0", Frequency: 2400}},
			Temperature: &temperature,
		},
	}

	encoded, err := json.Marshal(snapshot)
	assert.NoError(t, err)

	payload := string(encoded)
	for _, name := range []string{
		`"cpu"`, `"memory"`, `"disk"`, `"network"`, `"timestamp"`,
		`"brand"`, `"total_usage"`, `"cores"`, `"temperature"`, `"physical_core_count"`,
		`"name"`, `"usage"`, `"frequency"`,
		`"total"`, `"used"`, `"available"`, `"usage_percent"`,
		`"swap_total"`, `"swap_used"`, `"swap_usage_percent"`,
		`"disks"`, `"total_used"`, `"total_available"`, `"total_usage_percent"`,
		`"interfaces"`, `"total_upload_speed"`, `"total_download_speed"`,
		`"total_uploaded"`, `"total_downloaded"`,
	} {
		assert.True(t, strings.Contains(payload, name))
	}

	// Unset optionals serialize as JSON null.
	assert.True(t, strings.Contains(payload, `"physical_core_count":null`))
}

func TestDiskDetail_JSONFieldNames(t *testing.T) {
	detail := sysmon.DiskDetail{Name: "/dev/sda1", Removable: true}

	encoded, err := json.Marshal(detail)
	assert.NoError(t, err)

	payload := string(encoded)
	assert.True(t, strings.Contains(payload, `"mount_point"`))
	assert.True(t, strings.Contains(payload, `"file_system"`))
	assert.True(t, strings.Contains(payload, `"is_removable":true`))
}

func TestInterfaceInfo_JSONFieldNames(t *testing.T) {
	info := sysmon.InterfaceInfo{Name: "eth0", UploadBps: 1, DownloadBps: 2}

	encoded, err := json.Marshal(info)
	assert.NoError(t, err)

	payload := string(encoded)
	assert.True(t, strings.Contains(payload, `"upload_speed":1`))
	assert.True(t, strings.Contains(payload, `"download_speed":2`))
}
