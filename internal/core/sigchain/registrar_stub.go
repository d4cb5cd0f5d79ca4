//go:build !linux && !darwin

package sigchain

import (
	"os"
	"os/signal"
	"syscall"

	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
)

// OSRegistrar 不支持信号链的平台上的占位实现
//
// Base 返回 0，加载时信号表分配失败。
type OSRegistrar struct{}

var _ pkgif.SignalRegistrar = OSRegistrar{}

// NewOSRegistrar 创建 OSRegistrar
func NewOSRegistrar() OSRegistrar {
	return OSRegistrar{}
}

// Base 信号表大小
func (OSRegistrar) Base() int { return 0 }

// Ignored 信号当前是否被忽略
func (OSRegistrar) Ignored(sig os.Signal) bool { return signal.Ignored(sig) }

// Notify 把信号转发到 c
func (OSRegistrar) Notify(c chan<- os.Signal, sigs ...os.Signal) { signal.Notify(c, sigs...) }

// Stop 停止向 c 转发
func (OSRegistrar) Stop(c chan<- os.Signal) { signal.Stop(c) }

// Reset 恢复默认处置
func (OSRegistrar) Reset(sigs ...os.Signal) { signal.Reset(sigs...) }

// Ignore 忽略信号
func (OSRegistrar) Ignore(sigs ...os.Signal) { signal.Ignore(sigs...) }

// Raise 不支持
func (OSRegistrar) Raise(os.Signal) error { return ErrRaiseUnsupported }

func lookupSignal(name string) syscall.Signal {
	switch name {
	case "SIGINT":
		return syscall.SIGINT
	case "SIGTERM":
		return syscall.SIGTERM
	default:
		return 0
	}
}
