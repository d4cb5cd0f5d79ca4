// Package sigchain 实现崩溃安全清理的信号链
//
// 加载时为每个登记信号记录原处理器（默认、忽略或自定义），随后安装替换处理器。
// 信号到达时先执行信号安全的共享资源清理，再按原处理器语义转发：
//
//	Default  恢复默认处置并向自身重新投递，保留退出码与 core dump 行为
//	Ignore   不再处理
//	Custom   调用宿主提供的回调
//
// 关闭时同步执行普通清理、恢复原处置并释放信号表，释放只发生一次。
//
// Go 运行时通过 os/signal 把信号投递到普通 goroutine，因此替换处理器运行在
// Guard 的 goroutine 中；Go 代码内部的 SIGSEGV/SIGBUS 硬件故障会成为 panic，
// 只有外部发送的这两类信号会到达 Guard。
package sigchain

import (
	"github.com/dep2p/go-shm/pkg/lib/log"
)

var logger = log.Logger("core/sigchain")
