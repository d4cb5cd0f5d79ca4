// Package address 生成共享内存端点的规范地址名
//
// 地址分为两族：
//
//	fi_ns://<node>:<service>   具名（node/service 限定）
//	fi_ns://<service>
//	fi_shm://<node>            本地（进程身份）
//	fi_shm://<pid>
//
// 对端按前缀区分两族地址。去掉 scheme 后的部分即 tmpfs 中的文件名。
//
// # 截断
//
// 超过平台文件名上限（NAME_MAX）的名字被静默截断，这是已知限制而非错误。
// 返回的长度总是字符串长度加一，为结尾 NUL 预留，
// 与期望显式字节数的调用方保持线上兼容。
package address

import (
	"github.com/dep2p/go-shm/pkg/lib/log"
)

var logger = log.Logger("core/address")
