package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shm"

// Metrics provider 指标集合
type Metrics struct {
	DiscoverTotal  *prometheus.CounterVec
	Candidates     prometheus.Counter
	PolicyReads    prometheus.Counter
	CMADisabled    prometheus.Gauge
	SignalHandlers prometheus.Gauge
	CleanupsTotal  prometheus.Counter
	RegionsTracked prometheus.Gauge
}

// New 创建指标并注册到 reg
//
// reg 为 nil 时只创建不注册。
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		DiscoverTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discover_total",
			Help:      "Number of discovery calls by result.",
		}, []string{"result"}),
		Candidates: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discover_candidates_total",
			Help:      "Number of transport descriptions returned by discovery.",
		}),
		PolicyReads: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_reads_total",
			Help:      "Number of times the ptrace policy file was read.",
		}),
		CMADisabled: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cma_disabled",
			Help:      "Whether cross memory attach is disabled (1) or usable (0).",
		}),
		SignalHandlers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "signal_handlers",
			Help:      "Number of installed cleanup signal handlers.",
		}),
		CleanupsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanups_total",
			Help:      "Number of shared memory cleanups on the shutdown path.",
		}),
		RegionsTracked: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "regions",
			Help:      "Number of shared memory regions owned by this process.",
		}),
	}
}

// ObserveDiscover 记录一次发现调用
func (m *Metrics) ObserveDiscover(err error, candidates int) {
	if m == nil {
		return
	}
	if err != nil {
		m.DiscoverTotal.WithLabelValues("error").Inc()
		return
	}
	m.DiscoverTotal.WithLabelValues("ok").Inc()
	m.Candidates.Add(float64(candidates))
}

// ObservePolicyRead 记录一次策略文件读取及其结论
func (m *Metrics) ObservePolicyRead(disabled bool) {
	if m == nil {
		return
	}
	m.PolicyReads.Inc()
	m.SetCMADisabled(disabled)
}

// SetCMADisabled 设置 CMA 状态
func (m *Metrics) SetCMADisabled(disabled bool) {
	if m == nil {
		return
	}
	if disabled {
		m.CMADisabled.Set(1)
	} else {
		m.CMADisabled.Set(0)
	}
}

// SetSignalHandlers 设置已安装的信号处理器数
func (m *Metrics) SetSignalHandlers(n int) {
	if m == nil {
		return
	}
	m.SignalHandlers.Set(float64(n))
}

// ObserveCleanup 记录一次正常关闭路径的清理
func (m *Metrics) ObserveCleanup() {
	if m == nil {
		return
	}
	m.CleanupsTotal.Inc()
}

// SetRegions 设置登记的区域数
func (m *Metrics) SetRegions(n int) {
	if m == nil {
		return
	}
	m.RegionsTracked.Set(float64(n))
}
