package shm

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-shm/config"
	"github.com/dep2p/go-shm/internal/core/address"
	"github.com/dep2p/go-shm/internal/core/environment"
	"github.com/dep2p/go-shm/internal/core/fabricinfo"
	"github.com/dep2p/go-shm/internal/core/metrics"
	"github.com/dep2p/go-shm/internal/core/negotiate"
	"github.com/dep2p/go-shm/internal/core/shmfs"
	"github.com/dep2p/go-shm/internal/core/sigchain"
	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
)

// buildFxApp 构建 Fx 应用
//
// 加载顺序（按依赖）：
//  1. 配置 → 指标
//  2. Environment → Resolver → InfoBuilder → Negotiator
//  3. Registry → Guard（OnStart 安装信号处理器，OnStop 清理并释放信号表）
func buildFxApp(cfg *config.Config, o *options, p *Provider) (*fx.App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	modules := []fx.Option{
		fx.Supply(cfg),
		metrics.Module,
		environment.Module(),
		negotiate.Module(),
		shmfs.Module(),
		sigchain.Module(),
	}

	// 可替换的协作者
	if o.registerer != nil {
		modules = append(modules, fx.Provide(func() prometheus.Registerer { return o.registerer }))
	}
	if o.opener != nil {
		modules = append(modules, fx.Provide(func() environment.Opener { return o.opener }))
	}
	if o.pid != nil {
		modules = append(modules, fx.Provide(func() *address.Resolver { return address.NewResolver(o.pid) }))
	} else {
		modules = append(modules, address.Module())
	}
	if o.builder != nil {
		modules = append(modules, fx.Provide(func() pkgif.InfoBuilder { return o.builder }))
	} else {
		modules = append(modules, fabricinfo.Module())
	}
	if o.fastRMA != nil {
		modules = append(modules, fx.Provide(func() pkgif.FastRMAPolicy { return o.fastRMA }))
	}
	if o.registrar != nil {
		modules = append(modules, fx.Provide(func() pkgif.SignalRegistrar { return o.registrar }))
	}
	if o.chained != nil {
		modules = append(modules, fx.Provide(func() sigchain.ChainedHandler { return o.chained }))
	}

	if len(o.userFxOptions) > 0 {
		modules = append(modules, o.userFxOptions...)
	}

	modules = append(modules,
		fx.Invoke(injectProviderComponents(p)),
		fx.WithLogger(fxEventLogger(cfg.Log.FxEvents)),
	)

	return fx.New(modules...), nil
}

// fxEventLogger 返回 Fx 事件日志
//
// 默认丢弃，避免干扰宿主日志。
func fxEventLogger(enabled bool) func() fxevent.Logger {
	return func() fxevent.Logger {
		if enabled {
			if l, err := zap.NewDevelopment(); err == nil {
				return &fxevent.ZapLogger{Logger: l}
			}
		}
		return &fxevent.ZapLogger{Logger: zap.NewNop()}
	}
}

// providerInjectParams Provider 组件注入参数
type providerInjectParams struct {
	fx.In

	Env        *environment.Environment
	Negotiator *negotiate.Negotiator
	Registry   *shmfs.Registry
	Guard      *sigchain.Guard
	Metrics    *metrics.Metrics
}

// injectProviderComponents 创建 Provider 组件注入函数
func injectProviderComponents(p *Provider) interface{} {
	return func(params providerInjectParams) {
		p.env = params.Env
		p.negotiator = params.Negotiator
		p.registry = params.Registry
		p.guard = params.Guard
		p.metrics = params.Metrics
	}
}
