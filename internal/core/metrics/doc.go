// Package metrics 提供监控指标收集
//
// 基于 prometheus/client_golang 导出 provider 运行指标：
//   - shm_discover_total{result}: 发现调用次数（ok / error）
//   - shm_discover_candidates_total: 返回的候选描述数
//   - shm_policy_reads_total: ptrace 策略文件读取次数
//   - shm_cma_disabled: CMA 是否禁用（0/1）
//   - shm_signal_handlers: 已安装的清理信号处理器数
//   - shm_cleanups_total: 正常关闭路径的清理次数
//   - shm_regions: 登记的共享内存区域数
//
// 所有方法对 nil *Metrics 安全，未启用指标时组件可以直接传 nil。
//
// # Fx 模块集成
//
//	app := fx.New(
//	    metrics.Module,
//	    fx.Invoke(func(m *metrics.Metrics) { ... }),
//	)
package metrics

import (
	"github.com/dep2p/go-shm/pkg/lib/log"
)

var logger = log.Logger("core/metrics")
