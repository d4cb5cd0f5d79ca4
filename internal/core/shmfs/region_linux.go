package shmfs

import (
	"errors"
	"fmt"
	"unsafe"

	"go.uber.org/multierr"
	"golang.org/x/sys/unix"
)

// atFDCWD 以变量形式保存，便于转换为 uintptr
var atFDCWD = unix.AT_FDCWD

// encodePath 把路径编码为以 NUL 结尾的字节串
func encodePath(path string) (*byte, error) {
	return unix.BytePtrFromString(path)
}

// createRegion 以 O_EXCL 创建区域文件并映射
//
// created 在文件创建成功后、截断与映射之前调用。
func createRegion(path string, size int, created func()) (*Region, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	created()
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		return nil, multierr.Combine(
			fmt.Errorf("truncate %s: %w", path, err),
			unix.Close(fd),
			unix.Unlink(path),
		)
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, multierr.Combine(
			fmt.Errorf("mmap %s: %w", path, err),
			unix.Close(fd),
			unix.Unlink(path),
		)
	}
	return &Region{path: path, fd: fd, data: data}, nil
}

func openRegion(path string, size int) (*Region, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("mmap %s: %w", path, err), unix.Close(fd))
	}
	return &Region{path: path, fd: fd, data: data}, nil
}

func unmap(fd int, data []byte) error {
	return multierr.Append(unix.Munmap(data), unix.Close(fd))
}

// unlinkPath 删除区域文件，不存在视为成功
func unlinkPath(path string) error {
	if err := unix.Unlink(path); err != nil && !errors.Is(err, unix.ENOENT) {
		return fmt.Errorf("unlink %s: %w", path, err)
	}
	return nil
}

// unlinkSignalSafe 直接发起 unlinkat 系统调用
func unlinkSignalSafe(path *byte) {
	_, _, _ = unix.Syscall(unix.SYS_UNLINKAT, uintptr(atFDCWD), uintptr(unsafe.Pointer(path)), 0)
}
