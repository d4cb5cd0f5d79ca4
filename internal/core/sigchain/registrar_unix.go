//go:build linux || darwin

package sigchain

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"

	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
)

// OSRegistrar 基于 os/signal 的信号注册能力
type OSRegistrar struct{}

var _ pkgif.SignalRegistrar = OSRegistrar{}

// NewOSRegistrar 创建 OSRegistrar
func NewOSRegistrar() OSRegistrar {
	return OSRegistrar{}
}

// Base 信号表大小
func (OSRegistrar) Base() int {
	return sigRTMin
}

// Ignored 信号当前是否被忽略
func (OSRegistrar) Ignored(sig os.Signal) bool {
	return signal.Ignored(sig)
}

// Notify 把信号转发到 c
func (OSRegistrar) Notify(c chan<- os.Signal, sigs ...os.Signal) {
	signal.Notify(c, sigs...)
}

// Stop 停止向 c 转发
func (OSRegistrar) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

// Reset 恢复默认处置
func (OSRegistrar) Reset(sigs ...os.Signal) {
	signal.Reset(sigs...)
}

// Ignore 忽略信号
func (OSRegistrar) Ignore(sigs ...os.Signal) {
	signal.Ignore(sigs...)
}

// Raise 向本进程投递信号
func (OSRegistrar) Raise(sig os.Signal) error {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownSignal, sig)
	}
	return unix.Kill(unix.Getpid(), s)
}

func lookupSignal(name string) syscall.Signal {
	return unix.SignalNum(name)
}
