package environment

import (
	"sync"
	"sync/atomic"

	"github.com/dep2p/go-shm/internal/core/metrics"
)

// Environment provider 进程级环境
//
// 加载时构造后按引用传给发现与清理路径。
type Environment struct {
	forced  bool
	prober  *Prober
	metrics *metrics.Metrics

	once     sync.Once
	probed   atomic.Bool
	disabled atomic.Bool
}

// New 创建环境
//
// cfg.DisableCMA 为 true 时强制禁用，永远不会读取策略文件。
func New(cfg Config, prober *Prober, m *metrics.Metrics) *Environment {
	if prober == nil {
		prober = NewProber(cfg.PolicyFile, nil)
	}
	e := &Environment{
		forced:  cfg.DisableCMA,
		prober:  prober,
		metrics: m,
	}
	if e.forced {
		e.disabled.Store(true)
		m.SetCMADisabled(true)
	}
	return e
}

// Probe 确保策略已探测，返回是否禁用 CMA
//
// 幂等：配置强制禁用或已探测过时直接返回，不访问文件系统。
func (e *Environment) Probe() bool {
	if e.forced {
		return true
	}
	e.once.Do(func() {
		disabled := e.prober.Read()
		e.disabled.Store(disabled)
		e.probed.Store(true)
		e.metrics.ObservePolicyRead(disabled)
		logger.Info("CMA 策略探测完成", "disabled", disabled)
	})
	return e.disabled.Load()
}

// CMADisabled 当前记录的决定（不触发探测）
func (e *Environment) CMADisabled() bool {
	return e.disabled.Load()
}

// Forced 是否由配置强制禁用
func (e *Environment) Forced() bool {
	return e.forced
}

// Probed 是否已完成探测
func (e *Environment) Probed() bool {
	return e.probed.Load()
}
