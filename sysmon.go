package sysmon

// CoreInfo describes a single logical processor core.
type CoreInfo struct {
	// Name is a stable core identifier, e.g. "cpu0".
	Name string `json:"name"`
	// Usage is the core utilization percentage in [0, 100].
	Usage float64 `json:"usage"`
	// Frequency is the core clock in MHz, 0 when unknown.
	Frequency uint64 `json:"frequency"`
}

// CPUSnapshot represents the most recent processor reading.
type CPUSnapshot struct {
	// Brand is the CPU model string, empty when undeterminable.
	Brand string `json:"brand"`
	// TotalUsage is the mean of the per-core utilization percentages.
	TotalUsage float64 `json:"total_usage"`
	Cores      []CoreInfo `json:"cores"`
	// Temperature is the package temperature in degrees Celsius,
	// nil when the host exposes no usable sensor.
	Temperature *float64 `json:"temperature"`
	// PhysicalCores is nil when the physical core count cannot be
	// determined on the platform.
	PhysicalCores *int `json:"physical_core_count"`
}

// Clone returns a deep copy of the snapshot.
func (s CPUSnapshot) Clone() CPUSnapshot {
	clone := s
	if s.Cores != nil {
		clone.Cores = make([]CoreInfo, len(s.Cores))
		copy(clone.Cores, s.Cores)
	}
	if s.Temperature != nil {
		temperature := *s.Temperature
		clone.Temperature = &temperature
	}
	if s.PhysicalCores != nil {
		physicalCores := *s.PhysicalCores
		clone.PhysicalCores = &physicalCores
	}
	return clone
}

// MemorySnapshot represents the most recent physical and swap
// memory reading. All sizes are in bytes.
type MemorySnapshot struct {
	Total            uint64  `json:"total"`
	Used             uint64  `json:"used"`
	Available        uint64  `json:"available"`
	UsagePercent     float64 `json:"usage_percent"`
	SwapTotal        uint64  `json:"swap_total"`
	SwapUsed         uint64  `json:"swap_used"`
	SwapUsagePercent float64 `json:"swap_usage_percent"`
}

// Clone returns a copy of the snapshot.
func (s MemorySnapshot) Clone() MemorySnapshot {
	return s
}

// DiskDetail describes a single mounted volume. Sizes are in bytes.
type DiskDetail struct {
	// Name is the volume device identifier, e.g. "/dev/sda1".
	Name         string  `json:"name"`
	MountPoint   string  `json:"mount_point"`
	FileSystem   string  `json:"file_system"`
	Total        uint64  `json:"total"`
	Used         uint64  `json:"used"`
	Available    uint64  `json:"available"`
	UsagePercent float64 `json:"usage_percent"`
	Removable    bool    `json:"is_removable"`
}

// DiskSnapshot represents the most recent storage reading across all
// mounted volumes, removable media included. The aggregate fields are
// sums over Disks.
type DiskSnapshot struct {
	Disks             []DiskDetail `json:"disks"`
	Total             uint64       `json:"total"`
	TotalUsed         uint64       `json:"total_used"`
	TotalAvailable    uint64       `json:"total_available"`
	TotalUsagePercent float64      `json:"total_usage_percent"`
}

// Clone returns a deep copy of the snapshot.
func (s DiskSnapshot) Clone() DiskSnapshot {
	clone := s
	if s.Disks != nil {
		clone.Disks = make([]DiskDetail, len(s.Disks))
		copy(clone.Disks, s.Disks)
	}
	return clone
}

// InterfaceInfo describes a single network interface. Rates are in
// bytes per second; totals are cumulative bytes since boot.
type InterfaceInfo struct {
	Name            string `json:"name"`
	UploadBps       uint64 `json:"upload_speed"`
	DownloadBps     uint64 `json:"download_speed"`
	TotalUploaded   uint64 `json:"total_uploaded"`
	TotalDownloaded uint64 `json:"total_downloaded"`
}

// NetworkSnapshot represents the most recent network reading across
// all interfaces.
type NetworkSnapshot struct {
	Interfaces       []InterfaceInfo `json:"interfaces"`
	TotalUploadBps   uint64          `json:"total_upload_speed"`
	TotalDownloadBps uint64          `json:"total_download_speed"`
	TotalUploaded    uint64          `json:"total_uploaded"`
	TotalDownloaded  uint64          `json:"total_downloaded"`
}

// Clone returns a deep copy of the snapshot.
func (s NetworkSnapshot) Clone() NetworkSnapshot {
	clone := s
	if s.Interfaces != nil {
		clone.Interfaces = make([]InterfaceInfo, len(s.Interfaces))
		copy(clone.Interfaces, s.Interfaces)
	}
	return clone
}

// SystemSnapshot combines the latest reading of every domain.
// Domains are captured independently, so readings may originate from
// different collection cycles.
type SystemSnapshot struct {
	CPU     CPUSnapshot     `json:"cpu"`
	Memory  MemorySnapshot  `json:"memory"`
	Disk    DiskSnapshot    `json:"disk"`
	Network NetworkSnapshot `json:"network"`
	// Timestamp is the assembly time in Unix epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// Clone returns a deep copy of the snapshot.
func (s SystemSnapshot) Clone() SystemSnapshot {
	return SystemSnapshot{
		CPU:       s.CPU.Clone(),
		Memory:    s.Memory.Clone(),
		Disk:      s.Disk.Clone(),
		Network:   s.Network.Clone(),
		Timestamp: s.Timestamp,
	}
}
