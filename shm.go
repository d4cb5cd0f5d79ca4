package shm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/dep2p/go-shm/config"
	"github.com/dep2p/go-shm/internal/core/environment"
	"github.com/dep2p/go-shm/internal/core/fabricinfo"
	"github.com/dep2p/go-shm/internal/core/metrics"
	"github.com/dep2p/go-shm/internal/core/negotiate"
	"github.com/dep2p/go-shm/internal/core/shmfs"
	"github.com/dep2p/go-shm/internal/core/sigchain"
	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
	"github.com/dep2p/go-shm/pkg/lib/log"
	"github.com/dep2p/go-shm/pkg/types"
)

var logger = log.Logger("shm")

const (
	startTimeout = 10 * time.Second
	stopTimeout  = 10 * time.Second
)

// Provider 共享内存 provider 句柄
type Provider struct {
	id      uuid.UUID
	config  *config.Config
	fabrics pkgif.FabricOpener
	app     *fx.App

	// 由 Fx 注入
	env        *environment.Environment
	negotiator *negotiate.Negotiator
	registry   *shmfs.Registry
	guard      *sigchain.Guard
	metrics    *metrics.Metrics

	mu     sync.Mutex
	closed bool
}

// Load 加载 provider
//
// 失败时返回 nil provider 与错误，不留下已安装的信号处理器。
func Load(opts ...Option) (*Provider, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	cfg := o.toConfig()
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}

	p := &Provider{
		id:      uuid.New(),
		config:  cfg,
		fabrics: o.fabrics,
	}

	app, err := buildFxApp(cfg, o, p)
	if err != nil {
		return nil, err
	}
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("build provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		logger.Error("provider 加载失败", "id", p.id, "error", err)
		return nil, fmt.Errorf("load provider: %w", err)
	}
	p.app = app

	logger.Info("provider 已加载",
		"id", p.id,
		"version", fabricinfo.ProviderVersion,
		"disableCMA", cfg.Shm.DisableCMA,
		"signals", len(p.guard.Signals()))
	return p, nil
}

// Discover 协商并返回传输描述
//
// 构建器的错误原样返回。
func (p *Provider) Discover(version types.Version, node, service string, flags types.Flags, hints *types.Info) ([]*types.Info, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	return p.negotiator.Discover(version, node, service, flags, hints)
}

// BuildFabric 打开 fabric，委托给配置的 FabricOpener
func (p *Provider) BuildFabric(attr *types.FabricAttr) (pkgif.Fabric, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if p.fabrics == nil {
		return nil, ErrFabricUnavailable
	}
	return p.fabrics.OpenFabric(attr)
}

// CreateRegion 创建本进程拥有的共享内存区域
//
// 区域在 Teardown 或崩溃信号时被删除。
func (p *Provider) CreateRegion(addr string, size int) (*shmfs.Region, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	return p.registry.Create(addr, size)
}

// OpenRegion 映射对端拥有的区域
func (p *Provider) OpenRegion(addr string, size int) (*shmfs.Region, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	return p.registry.Open(addr, size)
}

// Teardown 关闭 provider
//
// 同步清理共享内存文件并释放信号表。nil provider 与重复调用都是安全的。
func (p *Provider) Teardown() error {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := p.app.Stop(ctx); err != nil {
		logger.Error("provider 关闭失败", "id", p.id, "error", err)
		return fmt.Errorf("teardown: %w", err)
	}

	logger.Info("provider 已关闭", "id", p.id)
	return nil
}

// Name provider 名称
func (p *Provider) Name() string {
	return fabricinfo.ProviderName
}

// Version provider 版本
func (p *Provider) Version() types.Version {
	return fabricinfo.ProviderVersion
}

// ID 本次加载的实例 ID
func (p *Provider) ID() string {
	return p.id.String()
}

// CMADisabled CMA 是否不可用
//
// 必要时触发一次策略探测。
func (p *Provider) CMADisabled() bool {
	return p.env.Probe()
}

// Config 返回生效配置的副本
func (p *Provider) Config() *config.Config {
	return config.CloneConfig(p.config)
}

// Metrics 返回指标集合
func (p *Provider) Metrics() *metrics.Metrics {
	return p.metrics
}

// Closed 是否已关闭
func (p *Provider) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *Provider) check() error {
	if p == nil || p.Closed() {
		return ErrProviderClosed
	}
	return nil
}
