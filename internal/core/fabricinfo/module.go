package fabricinfo

import (
	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
)

// Module 返回 Fx 模块
//
// 提供默认构建器作为 pkgif.InfoBuilder。
func Module() fx.Option {
	return fx.Module("fabricinfo",
		fx.Provide(
			fx.Annotate(
				func() *Builder { return NewBuilder(nil) },
				fx.As(new(pkgif.InfoBuilder)),
			),
		),
	)
}
