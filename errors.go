package shm

import (
	"errors"

	"github.com/dep2p/go-shm/internal/core/fabricinfo"
)

// 公共错误定义
var (
	// ErrProviderClosed provider 已关闭
	ErrProviderClosed = errors.New("shm: provider closed")

	// ErrFabricUnavailable 未配置 fabric 打开器
	ErrFabricUnavailable = errors.New("shm: fabric opener not configured")

	// ErrNoData 没有与提示匹配的描述
	ErrNoData = fabricinfo.ErrNoData

	// ErrBadVersion 请求的接口版本不受支持
	ErrBadVersion = fabricinfo.ErrBadVersion
)
