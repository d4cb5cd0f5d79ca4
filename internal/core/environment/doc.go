// Package environment 管理 provider 的进程级环境状态
//
// Environment 在加载时由配置构造，记录是否禁用跨进程内存直接拷贝（CMA）。
// 首次查询时由 Prober 读取内核 Yama ptrace 策略文件：
//
//	/proc/sys/kernel/yama/ptrace_scope
//
// 读取结果被记忆，整个生命周期内文件至多读取一次。
// 文件缺失、解析失败或关闭失败都按最保守策略处理（禁用 CMA），
// 只输出警告，不向调用方返回错误。
//
// # 并发安全
//
// 首次探测由 sync.Once 保护，并发的首次查询也只会读取一次文件。
package environment

import (
	"github.com/dep2p/go-shm/pkg/lib/log"
)

var logger = log.Logger("core/environment")
