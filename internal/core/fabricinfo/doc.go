// Package fabricinfo 提供默认的传输描述构建器
//
// Builder 保存 provider 的基础描述，按调用方提示过滤并复制：
//
//	builder := fabricinfo.NewBuilder(fabricinfo.BaseInfo())
//	infos, err := builder.GetInfo(types.MakeVersion(1, 21), "", "", 0, hints)
//
// 提示与基础能力不兼容时返回 ErrNoData；版本不支持时返回 ErrBadVersion。
// 成功时每次调用都返回新的描述副本，调用方拥有其所有权。
package fabricinfo

import (
	"github.com/dep2p/go-shm/pkg/lib/log"
)

var logger = log.Logger("core/fabricinfo")
