package sigchain

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/dep2p/go-shm/internal/core/metrics"
	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
)

// Guard 崩溃安全清理守卫
//
// Start 分配信号表、记录原处理器并安装替换处理器；Stop 执行关闭路径的清理并释放信号表。
type Guard struct {
	registrar pkgif.SignalRegistrar
	cleaner   pkgif.SharedCleaner
	signals   []os.Signal
	chained   ChainedHandler
	metrics   *metrics.Metrics

	mu      sync.Mutex
	table   *SignalTable
	ch      chan os.Signal
	done    chan struct{}
	exited  chan struct{}
	started bool
	stopped bool
}

// NewGuard 创建守卫
//
// chained 非 nil 时，未被忽略的信号以它作为原处理器（KindCustom）。
// chained 在 Guard 的 goroutine 中运行，不得同步调用 Stop。
func NewGuard(registrar pkgif.SignalRegistrar, cleaner pkgif.SharedCleaner, signals []os.Signal,
	chained ChainedHandler, m *metrics.Metrics) *Guard {
	return &Guard{
		registrar: registrar,
		cleaner:   cleaner,
		signals:   signals,
		chained:   chained,
		metrics:   m,
	}
}

// Start 安装信号处理器
//
// 失败时不会留下任何已安装的处理器，信号表也已释放。
func (g *Guard) Start(_ context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started || g.stopped {
		return ErrAlreadyStarted
	}

	table, err := NewSignalTable(g.registrar.Base())
	if err != nil {
		return err
	}

	// 先整体校验，再写入
	for _, sig := range g.signals {
		if !table.InRange(signum(sig)) {
			table.Release()
			return fmt.Errorf("%w: %v (size %d)", ErrSignalOutOfRange, sig, table.Size())
		}
	}
	for _, sig := range g.signals {
		if err := table.Store(signum(sig), g.previous(sig)); err != nil {
			table.Release()
			return err
		}
	}

	g.table = table
	g.ch = make(chan os.Signal, len(g.signals))
	g.done = make(chan struct{})
	g.exited = make(chan struct{})
	g.registrar.Notify(g.ch, g.signals...)
	g.started = true

	go g.loop(g.ch, g.done, g.exited)

	g.metrics.SetSignalHandlers(len(g.signals))
	logger.Info("信号处理器已安装", "signals", len(g.signals), "tableSize", table.Size())
	return nil
}

// previous 确定 sig 的原处理器
func (g *Guard) previous(sig os.Signal) Previous {
	if g.registrar.Ignored(sig) {
		return IgnoreAction()
	}
	if g.chained != nil {
		return CustomAction(g.chained)
	}
	return DefaultAction()
}

func (g *Guard) loop(ch <-chan os.Signal, done <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)
	for {
		select {
		case sig := <-ch:
			g.handle(sig)
		case <-done:
			return
		}
	}
}

// handle 替换处理器：清理后转发给原处理器
func (g *Guard) handle(sig os.Signal) {
	g.cleaner.CleanupSignalSafe()

	prev, ok := g.table.Load(signum(sig))
	if !ok {
		return
	}

	switch prev.Kind {
	case KindDefault:
		g.registrar.Reset(sig)
		if err := g.registrar.Raise(sig); err != nil {
			logger.Error("重新投递信号失败", "signal", sig, "error", err)
		}
	case KindIgnore:
	case KindCustom:
		prev.Handler(sig)
	}
}

// Stop 执行关闭路径清理并释放信号表
//
// 可重复调用，也可在 Start 失败后调用；清理失败时仍会释放信号表。
func (g *Guard) Stop(_ context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return nil
	}
	g.stopped = true

	err := g.cleaner.Cleanup()
	g.metrics.ObserveCleanup()

	if g.started {
		g.registrar.Stop(g.ch)
		close(g.done)
		<-g.exited
		g.restore()
		g.metrics.SetSignalHandlers(0)
	}

	if g.table.Release() {
		logger.Info("信号表已释放")
	}

	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	return nil
}

// restore 恢复各信号的原处置
func (g *Guard) restore() {
	for _, sig := range g.signals {
		prev, _ := g.table.Load(signum(sig))
		if prev.Kind == KindIgnore {
			g.registrar.Ignore(sig)
		} else {
			g.registrar.Reset(sig)
		}
	}
}

// Table 返回信号表，未启动时为 nil
func (g *Guard) Table() *SignalTable {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.table
}

// Signals 返回登记的信号
func (g *Guard) Signals() []os.Signal {
	return append([]os.Signal(nil), g.signals...)
}
