package sysmon

import "time"

// Default collection intervals used by DefaultConfig.
const (
	DefaultCPUInterval     = 5 * time.Second
	DefaultMemoryInterval  = 10 * time.Second
	DefaultDiskInterval    = 5 * time.Minute
	DefaultNetworkInterval = 3 * time.Second
)

// Config holds the collection interval for each metrics domain.
// Intervals are quantized up to the monitor's scheduler tick; a zero
// or negative interval schedules the domain on every tick. A Config
// is read once when a monitor is created, later changes to it have
// no effect.
type Config struct {
	// CPUInterval is the time between processor readings.
	// Default config value: 5s
	CPUInterval time.Duration

	// MemoryInterval is the time between memory readings.
	// Default config value: 10s
	MemoryInterval time.Duration

	// DiskInterval is the time between storage readings. Volume
	// enumeration walks the mount table, hence the long default.
	// Default config value: 5m
	DiskInterval time.Duration

	// NetworkInterval is the time between network readings. It also
	// sets the window over which transfer rates are averaged.
	// Default config value: 3s
	NetworkInterval time.Duration
}

// DefaultConfig returns a Config populated with the default intervals.
func DefaultConfig() Config {
	return Config{
		CPUInterval:     DefaultCPUInterval,
		MemoryInterval:  DefaultMemoryInterval,
		DiskInterval:    DefaultDiskInterval,
		NetworkInterval: DefaultNetworkInterval,
	}
}

// WithCPUInterval returns a copy of the Config with the processor
// collection interval replaced.
func (c Config) WithCPUInterval(interval time.Duration) Config {
	c.CPUInterval = interval
	return c
}

// WithMemoryInterval returns a copy of the Config with the memory
// collection interval replaced.
func (c Config) WithMemoryInterval(interval time.Duration) Config {
	c.MemoryInterval = interval
	return c
}

// WithDiskInterval returns a copy of the Config with the storage
// collection interval replaced.
func (c Config) WithDiskInterval(interval time.Duration) Config {
	c.DiskInterval = interval
	return c
}

// WithNetworkInterval returns a copy of the Config with the network
// collection interval replaced.
func (c Config) WithNetworkInterval(interval time.Duration) Config {
	c.NetworkInterval = interval
	return c
}
