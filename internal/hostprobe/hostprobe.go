package hostprobe

import "os"

// FileSystem abstracts file reads for testing.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
