package sigchain

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/dep2p/go-shm/config"
	"github.com/dep2p/go-shm/internal/core/metrics"
	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
)

// Config 信号链配置
type Config struct {
	// Signals 登记的信号名
	Signals []string
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{Signals: config.DefaultSignals()}
}

// ConfigFromUnified 从统一配置创建信号链配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil || len(cfg.Shm.Signals) == 0 {
		return NewConfig()
	}
	return Config{Signals: append([]string(nil), cfg.Shm.Signals...)}
}

// Params 守卫依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config        `optional:"true"`
	Registrar  pkgif.SignalRegistrar `optional:"true"`
	Cleaner    pkgif.SharedCleaner
	Chained    ChainedHandler   `optional:"true"`
	Metrics    *metrics.Metrics `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("sigchain",
		fx.Provide(ProvideGuard),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideGuard 提供 Guard
func ProvideGuard(p Params) (*Guard, error) {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	sigs, err := ParseSignals(cfg.Signals)
	if err != nil {
		return nil, fmt.Errorf("signals: %w", err)
	}

	registrar := p.Registrar
	if registrar == nil {
		registrar = NewOSRegistrar()
	}
	return NewGuard(registrar, p.Cleaner, sigs, p.Chained, p.Metrics), nil
}

// registerLifecycle 注册生命周期
func registerLifecycle(lc fx.Lifecycle, g *Guard) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return g.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return g.Stop(ctx)
		},
	})
}
