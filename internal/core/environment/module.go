package environment

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-shm/config"
	"github.com/dep2p/go-shm/internal/core/metrics"
)

// Config 环境配置
type Config struct {
	// DisableCMA 配置强制禁用 CMA
	DisableCMA bool

	// PolicyFile ptrace 策略文件路径
	PolicyFile string
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		DisableCMA: false,
		PolicyFile: config.DefaultPolicyFile,
	}
}

// ConfigFromUnified 从统一配置创建环境配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return NewConfig()
	}
	return Config{
		DisableCMA: cfg.Shm.DisableCMA,
		PolicyFile: cfg.Shm.PolicyFile,
	}
}

// Params 环境依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config   `optional:"true"`
	Opener     Opener           `optional:"true"`
	Metrics    *metrics.Metrics `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("environment",
		fx.Provide(ProvideEnvironment),
	)
}

// ProvideEnvironment 提供 Environment
func ProvideEnvironment(p Params) *Environment {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	logger.Debug("创建环境", "disableCMA", cfg.DisableCMA, "policyFile", cfg.PolicyFile)
	return New(cfg, NewProber(cfg.PolicyFile, p.Opener), p.Metrics)
}
