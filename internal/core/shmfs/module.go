package shmfs

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-shm/config"
	"github.com/dep2p/go-shm/internal/core/metrics"
	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
)

// Config 区域登记表配置
type Config struct {
	// Dir 区域文件目录
	Dir string

	// MaxRegions 登记表容量
	MaxRegions int
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		Dir:        config.DefaultShmDir,
		MaxRegions: config.DefaultMaxRegions,
	}
}

// ConfigFromUnified 从统一配置创建登记表配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return NewConfig()
	}
	return Config{
		Dir:        cfg.Shm.ShmDir,
		MaxRegions: cfg.Shm.MaxRegions,
	}
}

// Params 登记表依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config   `optional:"true"`
	Metrics    *metrics.Metrics `optional:"true"`
}

// Module 返回 Fx 模块
//
// 同时以 pkgif.SharedCleaner 提供登记表。
func Module() fx.Option {
	return fx.Module("shmfs",
		fx.Provide(
			fx.Annotate(
				ProvideRegistry,
				fx.As(fx.Self()),
				fx.As(new(pkgif.SharedCleaner)),
			),
		),
	)
}

// ProvideRegistry 提供 Registry
func ProvideRegistry(p Params) *Registry {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	return New(cfg.Dir, cfg.MaxRegions, p.Metrics)
}
