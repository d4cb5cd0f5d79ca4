package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Params Metrics 依赖参数
type Params struct {
	fx.In

	Registerer prometheus.Registerer `optional:"true"`
}

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(NewFromParams),
)

// NewFromParams 从参数创建 Metrics
//
// 未注入 Registerer 时指标只在进程内可见。
func NewFromParams(p Params) *Metrics {
	if p.Registerer == nil {
		logger.Debug("未提供 Registerer，指标不注册")
	}
	return New(p.Registerer)
}
