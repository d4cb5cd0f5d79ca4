package fabricinfo

import "errors"

var (
	// ErrNoData 没有匹配提示的传输描述
	ErrNoData = errors.New("no matching transport description")

	// ErrBadVersion 不支持的接口版本
	ErrBadVersion = errors.New("unsupported interface version")
)
