package address

import (
	"os"
	"strconv"
)

// Resolver 地址解析器
type Resolver struct {
	pid func() int
}

// NewResolver 创建解析器
//
// pid 为 nil 时使用 os.Getpid。
func NewResolver(pid func() int) *Resolver {
	if pid == nil {
		pid = os.Getpid
	}
	return &Resolver{pid: pid}
}

// Resolve 由 node/service 生成地址，空字符串表示未设置
//
//	node  service  结果
//	set   set      fi_ns://<node>:<service>
//	-     set      fi_ns://<service>
//	set   -        fi_shm://<node>
//	-     -        fi_shm://<pid>
//
// 返回的长度为字符串长度加一。
func (r *Resolver) Resolve(node, service string) (string, int) {
	var name string
	switch {
	case service != "" && node != "":
		name = PrefixNamed + node + ":" + service
	case service != "":
		name = PrefixNamed + service
	case node != "":
		name = PrefixLocal + node
	default:
		name = PrefixLocal + strconv.Itoa(r.pid())
	}

	name = truncate(name)
	return name, len(name) + 1
}

// truncate 截断到 NAME_MAX-2 字节
//
// 缓冲区 NAME_MAX 中写入上限为 NAME_MAX-1 字节（含 NUL）。
func truncate(name string) string {
	const limit = MaxNameLen - 2
	if len(name) <= limit {
		return name
	}
	logger.Debug("地址超长，截断", "len", len(name), "limit", limit)
	return name[:limit]
}
