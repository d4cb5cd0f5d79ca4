package negotiate

import (
	"go.uber.org/fx"

	"github.com/dep2p/go-shm/internal/core/address"
	"github.com/dep2p/go-shm/internal/core/environment"
	"github.com/dep2p/go-shm/internal/core/metrics"
	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
)

// Params 协商器依赖参数
type Params struct {
	fx.In

	Env      *environment.Environment
	Builder  pkgif.InfoBuilder
	Resolver *address.Resolver   `optional:"true"`
	Policy   pkgif.FastRMAPolicy `optional:"true"`
	Metrics  *metrics.Metrics    `optional:"true"`
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("negotiate",
		fx.Provide(ProvideNegotiator),
	)
}

// ProvideNegotiator 提供 Negotiator
func ProvideNegotiator(p Params) *Negotiator {
	return New(p.Env, p.Builder, p.Resolver, p.Policy, p.Metrics)
}
