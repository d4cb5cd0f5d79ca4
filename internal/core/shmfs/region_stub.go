//go:build !linux

package shmfs

import (
	"os"
)

func encodePath(path string) (*byte, error) {
	b := append([]byte(path), 0)
	return &b[0], nil
}

func createRegion(string, int, func()) (*Region, error) {
	return nil, ErrUnsupported
}

func openRegion(string, int) (*Region, error) {
	return nil, ErrUnsupported
}

func unmap(int, []byte) error {
	return nil
}

func unlinkPath(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func unlinkSignalSafe(*byte) {}
