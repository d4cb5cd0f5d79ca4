package types

// ============================================================================
//                              传输描述
// ============================================================================

// Info 传输描述
//
// 一条 Info 描述一组协商后的能力。由描述构建器按发现请求创建，
// 协商器原地修改后连同所有权一并交给调用方。
type Info struct {
	Caps       Caps
	Mode       uint64
	AddrFormat AddrFormat

	// SrcAddr 源地址，空字符串表示未设置
	SrcAddr string
	// SrcAddrLen 源地址字节数（含结尾 NUL）
	SrcAddrLen int

	// DestAddr 目的地址，空字符串表示未设置
	DestAddr string
	// DestAddrLen 目的地址字节数（含结尾 NUL）
	DestAddrLen int

	FabricAttr *FabricAttr
	DomainAttr *DomainAttr
	TxAttr     *TxAttr
	EPAttr     *EPAttr
}

// FabricAttr fabric 属性
type FabricAttr struct {
	Name        string
	ProvName    string
	ProvVersion Version
	APIVersion  Version
}

// DomainAttr 域属性
type DomainAttr struct {
	Name   string
	MRMode MRMode
}

// TxAttr 发送属性
type TxAttr struct {
	Caps       Caps
	MsgOrder   MsgOrder
	InjectSize uint64
}

// EPAttr 端点属性
type EPAttr struct {
	Type       EPType
	MaxMsgSize uint64

	// 各类顺序保证生效的最大窗口
	MaxOrderRAWSize uint64
	MaxOrderWAWSize uint64
	MaxOrderWARSize uint64
}

// HasSrcAddr 是否已设置源地址
func (i *Info) HasSrcAddr() bool {
	return i.SrcAddr != ""
}

// HasDestAddr 是否已设置目的地址
func (i *Info) HasDestAddr() bool {
	return i.DestAddr != ""
}

// SetSrcAddr 设置源地址及其长度
func (i *Info) SetSrcAddr(addr string, n int) {
	i.SrcAddr, i.SrcAddrLen = addr, n
}

// SetDestAddr 设置目的地址及其长度
func (i *Info) SetDestAddr(addr string, n int) {
	i.DestAddr, i.DestAddrLen = addr, n
}

// RequestedMRMode 返回提示中请求的内存注册模式
//
// 提示或其域属性缺失时返回 MRVirtAddr。
func (i *Info) RequestedMRMode() MRMode {
	if i == nil || i.DomainAttr == nil {
		return MRVirtAddr
	}
	return i.DomainAttr.MRMode
}

// RequestedMsgOrder 返回提示中请求的消息顺序
//
// 提示或其发送属性缺失时返回 OrderNone。
func (i *Info) RequestedMsgOrder() MsgOrder {
	if i == nil || i.TxAttr == nil {
		return OrderNone
	}
	return i.TxAttr.MsgOrder
}

// Clone 深拷贝
func (i *Info) Clone() *Info {
	if i == nil {
		return nil
	}
	out := *i
	if i.FabricAttr != nil {
		fa := *i.FabricAttr
		out.FabricAttr = &fa
	}
	if i.DomainAttr != nil {
		da := *i.DomainAttr
		out.DomainAttr = &da
	}
	if i.TxAttr != nil {
		ta := *i.TxAttr
		out.TxAttr = &ta
	}
	if i.EPAttr != nil {
		ea := *i.EPAttr
		out.EPAttr = &ea
	}
	return &out
}
