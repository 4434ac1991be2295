//go:build !linux

package hostprobe

// Removable reports whether the given device sits on removable media.
// Removable detection is implemented for Linux only; other platforms
// report false.
func Removable(device string) bool {
	return false
}
