package fabricinfo

import (
	"fmt"

	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
	"github.com/dep2p/go-shm/pkg/types"
)

// Builder 默认传输描述构建器
type Builder struct {
	base *types.Info
}

var _ pkgif.InfoBuilder = (*Builder)(nil)

// NewBuilder 创建构建器
//
// base 为 nil 时使用 BaseInfo()。
func NewBuilder(base *types.Info) *Builder {
	if base == nil {
		base = BaseInfo()
	}
	return &Builder{base: base}
}

// GetInfo 按提示枚举候选描述
func (b *Builder) GetInfo(version types.Version, node, service string, flags types.Flags, hints *types.Info) ([]*types.Info, error) {
	if version < MinVersion || version > APIVersion {
		return nil, fmt.Errorf("%w: %s", ErrBadVersion, version)
	}
	if err := b.check(hints); err != nil {
		logger.Debug("提示不匹配", "node", node, "service", service, "error", err)
		return nil, err
	}

	info := b.base.Clone()
	alter(info, hints)
	return []*types.Info{info}, nil
}

// check 检查提示与基础描述是否兼容
func (b *Builder) check(hints *types.Info) error {
	if hints == nil {
		return nil
	}
	if fa := hints.FabricAttr; fa != nil && fa.ProvName != "" && fa.ProvName != b.base.FabricAttr.ProvName {
		return fmt.Errorf("%w: provider %q", ErrNoData, fa.ProvName)
	}
	if !b.base.Caps.Has(hints.Caps) {
		return fmt.Errorf("%w: caps %#x", ErrNoData, uint64(hints.Caps&^b.base.Caps))
	}
	if hints.AddrFormat != types.AddrFormatUnspec && hints.AddrFormat != b.base.AddrFormat {
		return fmt.Errorf("%w: address format %d", ErrNoData, hints.AddrFormat)
	}
	if ep := hints.EPAttr; ep != nil && ep.Type != types.EPUnspec && ep.Type != b.base.EPAttr.Type {
		return fmt.Errorf("%w: endpoint type %s", ErrNoData, ep.Type)
	}
	if tx := hints.TxAttr; tx != nil && tx.MsgOrder&^b.base.TxAttr.MsgOrder != 0 {
		return fmt.Errorf("%w: msg order %s", ErrNoData, tx.MsgOrder)
	}
	return nil
}

// alter 用提示收窄描述
func alter(info, hints *types.Info) {
	if hints == nil {
		return
	}
	if hints.Caps != 0 {
		info.Caps = hints.Caps
		info.TxAttr.Caps = hints.Caps
	}
	if da := hints.DomainAttr; da != nil && da.MRMode != types.MRUnspec {
		info.DomainAttr.MRMode = da.MRMode
	}
	if tx := hints.TxAttr; tx != nil {
		info.TxAttr.MsgOrder = tx.MsgOrder
	}
	if hints.HasSrcAddr() {
		info.SetSrcAddr(hints.SrcAddr, hints.SrcAddrLen)
	}
	if hints.HasDestAddr() {
		info.SetDestAddr(hints.DestAddr, hints.DestAddrLen)
	}
}
