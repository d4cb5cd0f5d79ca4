package shmfs

import "errors"

var (
	// ErrRegistryFull 登记表已满
	ErrRegistryFull = errors.New("shmfs: region registry full")

	// ErrBadName 地址无法转换为区域名
	ErrBadName = errors.New("shmfs: invalid region name")

	// ErrBadSize 区域大小无效
	ErrBadSize = errors.New("shmfs: invalid region size")

	// ErrRegionClosed 区域已关闭
	ErrRegionClosed = errors.New("shmfs: region closed")

	// ErrNotOwned 区域不属于本登记表
	ErrNotOwned = errors.New("shmfs: region not owned by registry")

	// ErrUnsupported 当前平台不支持共享内存区域
	ErrUnsupported = errors.New("shmfs: not supported on this platform")
)
