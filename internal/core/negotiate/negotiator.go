package negotiate

import (
	"github.com/dep2p/go-shm/internal/core/address"
	"github.com/dep2p/go-shm/internal/core/environment"
	"github.com/dep2p/go-shm/internal/core/fabricinfo"
	"github.com/dep2p/go-shm/internal/core/metrics"
	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
	"github.com/dep2p/go-shm/pkg/types"
)

// Negotiator 能力协商器
type Negotiator struct {
	env      *environment.Environment
	builder  pkgif.InfoBuilder
	resolver *address.Resolver
	fastRMA  pkgif.FastRMAPolicy
	metrics  *metrics.Metrics

	injectSize uint64
}

// New 创建协商器
//
// policy 为 nil 时使用 FastRMAEnabled，resolver 为 nil 时使用真实进程号。
func New(env *environment.Environment, builder pkgif.InfoBuilder, resolver *address.Resolver,
	policy pkgif.FastRMAPolicy, m *metrics.Metrics) *Negotiator {
	if policy == nil {
		policy = FastRMAEnabled
	}
	if resolver == nil {
		resolver = address.NewResolver(nil)
	}
	return &Negotiator{
		env:        env,
		builder:    builder,
		resolver:   resolver,
		fastRMA:    policy,
		metrics:    m,
		injectSize: fabricinfo.InjectSize,
	}
}

// Discover 协商并返回传输描述
//
// 构建器的错误原样返回，此时不返回任何描述。
func (n *Negotiator) Discover(version types.Version, node, service string, flags types.Flags, hints *types.Info) ([]*types.Info, error) {
	mode := hints.RequestedMRMode()
	order := hints.RequestedMsgOrder()

	cmaDisabled := n.env.Probe()
	fastRMA := n.fastRMA(mode, order)

	infos, err := n.builder.GetInfo(version, node, service, flags, hints)
	n.metrics.ObserveDiscover(err, len(infos))
	if err != nil {
		return nil, err
	}

	for _, info := range infos {
		n.fillAddrs(info, node, service, flags)
		if fastRMA {
			forceStrict(info)
		}
		if cmaDisabled {
			n.capMsgSize(info)
		}
	}

	logger.Debug("发现完成",
		"candidates", len(infos),
		"mrMode", mode,
		"msgOrder", order,
		"fastRMA", fastRMA,
		"cmaDisabled", cmaDisabled)
	return infos, nil
}

// fillAddrs 补全缺失的源/目的地址
func (n *Negotiator) fillAddrs(info *types.Info, node, service string, flags types.Flags) {
	source := flags.Has(types.FlagSource)

	if !source && !info.HasDestAddr() {
		info.SetDestAddr(n.resolver.Resolve(node, service))
	}

	if !info.HasSrcAddr() {
		if source {
			info.SetSrcAddr(n.resolver.Resolve(node, service))
		} else {
			info.SetSrcAddr(n.resolver.Resolve("", ""))
		}
	}
}

// forceStrict 强制虚拟地址注册与 SAS 顺序，清零顺序窗口
func forceStrict(info *types.Info) {
	if info.DomainAttr == nil {
		info.DomainAttr = &types.DomainAttr{}
	}
	info.DomainAttr.MRMode = types.MRVirtAddr

	if info.TxAttr == nil {
		info.TxAttr = &types.TxAttr{}
	}
	info.TxAttr.MsgOrder = types.OrderSAS

	if info.EPAttr == nil {
		info.EPAttr = &types.EPAttr{}
	}
	info.EPAttr.MaxOrderRAWSize = 0
	info.EPAttr.MaxOrderWAWSize = 0
	info.EPAttr.MaxOrderWARSize = 0
}

// capMsgSize CMA 禁用时把最大消息大小限制为注入上限
func (n *Negotiator) capMsgSize(info *types.Info) {
	if info.EPAttr == nil {
		info.EPAttr = &types.EPAttr{}
	}
	info.EPAttr.MaxMsgSize = n.injectSize
}
