package address

import (
	"go.uber.org/fx"
)

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("address",
		fx.Provide(ProvideResolver),
	)
}

// ProvideResolver 提供使用真实进程号的解析器
func ProvideResolver() *Resolver {
	return NewResolver(nil)
}
