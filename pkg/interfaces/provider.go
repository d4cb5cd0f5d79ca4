// Package interfaces 定义 go-shm 公共接口
//
// 本文件定义 provider 依赖的外部协作者接口。
package interfaces

import (
	"os"

	"github.com/dep2p/go-shm/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
// 传输描述构建
// ════════════════════════════════════════════════════════════════════════════

// InfoBuilder 通用传输描述构建器
//
// 按版本、node/service、标志和提示枚举候选传输描述。
// 返回的描述归调用方所有；失败时不返回任何描述。
type InfoBuilder interface {
	GetInfo(version types.Version, node, service string, flags types.Flags, hints *types.Info) ([]*types.Info, error)
}

// InfoBuilderFunc 函数形式的 InfoBuilder
type InfoBuilderFunc func(version types.Version, node, service string, flags types.Flags, hints *types.Info) ([]*types.Info, error)

// GetInfo 实现 InfoBuilder
func (f InfoBuilderFunc) GetInfo(version types.Version, node, service string, flags types.Flags, hints *types.Info) ([]*types.Info, error) {
	return f(version, node, service, flags, hints)
}

// FastRMAPolicy 判定请求的注册模式与消息顺序是否允许快速 RMA
//
// 返回 true 时协商器把候选描述强制为严格默认值。
type FastRMAPolicy func(mode types.MRMode, order types.MsgOrder) bool

// ════════════════════════════════════════════════════════════════════════════
// 共享资源清理
// ════════════════════════════════════════════════════════════════════════════

// SharedCleaner 共享内存资源清理
type SharedCleaner interface {
	// Cleanup 正常关闭路径下删除本进程拥有的共享内存文件
	Cleanup() error

	// CleanupSignalSafe 信号处理路径下的清理
	//
	// 只允许不分配内存、不获取锁的操作，错误被忽略。
	CleanupSignalSafe()
}

// ════════════════════════════════════════════════════════════════════════════
// 信号注册
// ════════════════════════════════════════════════════════════════════════════

// SignalRegistrar 宿主信号注册能力
type SignalRegistrar interface {
	// Base 信号处理表大小（实时信号起点），所有注册信号必须小于该值
	Base() int

	// Ignored 信号当前是否被忽略
	Ignored(sig os.Signal) bool

	// Notify 将信号转发到 c
	Notify(c chan<- os.Signal, sigs ...os.Signal)

	// Stop 停止向 c 转发信号
	Stop(c chan<- os.Signal)

	// Reset 恢复信号的默认处置
	Reset(sigs ...os.Signal)

	// Ignore 忽略信号
	Ignore(sigs ...os.Signal)

	// Raise 向本进程重新投递信号
	Raise(sig os.Signal) error
}

// ════════════════════════════════════════════════════════════════════════════
// fabric 构造
// ════════════════════════════════════════════════════════════════════════════

// Fabric 已打开的 fabric
type Fabric interface {
	Name() string
	Close() error
}

// FabricOpener fabric 构造委托
type FabricOpener interface {
	OpenFabric(attr *types.FabricAttr) (Fabric, error)
}
