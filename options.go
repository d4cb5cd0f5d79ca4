package shm

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-shm/config"
	"github.com/dep2p/go-shm/internal/core/environment"
	"github.com/dep2p/go-shm/internal/core/sigchain"
	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
	"github.com/dep2p/go-shm/pkg/lib/log"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	// 配置
	config     *config.Config
	skipEnv    bool
	disableCMA *bool
	logLevel   *string

	// 协作者
	builder   pkgif.InfoBuilder
	fastRMA   pkgif.FastRMAPolicy
	registrar pkgif.SignalRegistrar
	fabrics   pkgif.FabricOpener
	opener    environment.Opener
	chained   sigchain.ChainedHandler
	pid       func() int

	// 指标
	registerer prometheus.Registerer

	// 用户扩展
	userFxOptions []fx.Option
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{}
}

// toConfig 生成最终配置
//
// 优先级：显式选项 > 环境变量 > 配置对象 > 默认值。
func (o *options) toConfig() *config.Config {
	var cfg *config.Config
	if o.config != nil {
		cfg = config.CloneConfig(o.config)
	} else {
		cfg = config.NewConfig()
	}

	if !o.skipEnv {
		config.ApplyEnv(cfg)
	}

	if o.disableCMA != nil {
		cfg.Shm.DisableCMA = *o.disableCMA
	}
	if o.logLevel != nil {
		cfg.Log.Level = *o.logLevel
	}
	return cfg
}

// ============================================================================
//                              配置选项
// ============================================================================

// WithConfig 使用给定配置作为基础
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return fmt.Errorf("配置不能为空")
		}
		o.config = cfg
		return nil
	}
}

// WithConfigFile 从 JSON 文件加载配置
func WithConfigFile(path string) Option {
	return func(o *options) error {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		o.config = cfg
		return nil
	}
}

// WithoutEnv 不读取 FI_SHM_* 环境变量
func WithoutEnv() Option {
	return func(o *options) error {
		o.skipEnv = true
		return nil
	}
}

// WithDisableCMA 强制设置 disable_cma
func WithDisableCMA(disable bool) Option {
	return func(o *options) error {
		o.disableCMA = &disable
		return nil
	}
}

// WithLogLevel 强制设置本库日志级别
//
// 只影响 go-shm 自身的日志，不修改宿主的 slog.Default()。
func WithLogLevel(level string) Option {
	return func(o *options) error {
		if _, err := log.ParseLevel(level); err != nil {
			return err
		}
		o.logLevel = &level
		return nil
	}
}

// ============================================================================
//                              协作者选项
// ============================================================================

// WithInfoBuilder 替换默认描述构建器
func WithInfoBuilder(b pkgif.InfoBuilder) Option {
	return func(o *options) error {
		if b == nil {
			return fmt.Errorf("描述构建器不能为空")
		}
		o.builder = b
		return nil
	}
}

// WithFastRMAPolicy 替换快速 RMA 判定
func WithFastRMAPolicy(policy pkgif.FastRMAPolicy) Option {
	return func(o *options) error {
		o.fastRMA = policy
		return nil
	}
}

// WithSignalRegistrar 替换信号注册能力
func WithSignalRegistrar(r pkgif.SignalRegistrar) Option {
	return func(o *options) error {
		o.registrar = r
		return nil
	}
}

// WithFabricOpener 设置 BuildFabric 的委托对象
func WithFabricOpener(f pkgif.FabricOpener) Option {
	return func(o *options) error {
		o.fabrics = f
		return nil
	}
}

// WithPolicyOpener 替换 ptrace 策略文件的打开方式
func WithPolicyOpener(open environment.Opener) Option {
	return func(o *options) error {
		o.opener = open
		return nil
	}
}

// WithChainedHandler 设置信号清理后调用的宿主回调
//
// 未被忽略的登记信号以 fn 作为原处理器，不再恢复默认处置并重新投递。
func WithChainedHandler(fn func(sig os.Signal)) Option {
	return func(o *options) error {
		o.chained = fn
		return nil
	}
}

// WithPID 替换本地地址使用的进程号来源
func WithPID(pid func() int) Option {
	return func(o *options) error {
		o.pid = pid
		return nil
	}
}

// WithRegisterer 把指标注册到 reg
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) error {
		o.registerer = reg
		return nil
	}
}

// WithFxOption 追加用户 Fx 选项
func WithFxOption(opts ...fx.Option) Option {
	return func(o *options) error {
		o.userFxOptions = append(o.userFxOptions, opts...)
		return nil
	}
}
