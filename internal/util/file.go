package util

import "os"

// EnsureDirectory creates the directory and any parents if needed.
func EnsureDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}
