//go:build linux

package hostprobe

import (
	"strings"
	"unicode"
)

// Removable reports whether the block device backing the given device
// path sits on removable media, e.g. a USB stick or an SD card.
// Partition names are resolved to their parent block device before the
// sysfs removable attribute is read. Unresolvable devices report false.
func Removable(device string) bool {
	return removableWithFS(OSFileSystem{}, device)
}

func removableWithFS(fileSystem FileSystem, device string) bool {
	name := strings.TrimPrefix(device, "/dev/")
	if name == "" || strings.ContainsRune(name, '/') {
		// Mapper and multipath volumes have no direct sysfs block entry.
		return false
	}

	candidates := []string{name}
	if parent := parentBlockDevice(name); parent != name && parent != "" {
		candidates = append(candidates, parent)
	}
	for _, candidate := range candidates {
		data, err := fileSystem.ReadFile("/sys/block/" + candidate + "/removable")
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(data)) == "1"
	}
	return false
}

// parentBlockDevice strips a partition suffix from a device name:
// sda1 becomes sda, nvme0n1p2 becomes nvme0n1, mmcblk0p1 becomes mmcblk0.
func parentBlockDevice(name string) string {
	trimmed := strings.TrimRightFunc(name, unicode.IsDigit)
	if trimmed != name && len(trimmed) > 1 &&
		trimmed[len(trimmed)-1] == 'p' && unicode.IsDigit(rune(trimmed[len(trimmed)-2])) {
		trimmed = trimmed[:len(trimmed)-1]
	}
	return trimmed
}
