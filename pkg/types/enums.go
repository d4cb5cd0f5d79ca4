package types

import (
	"strings"
)

// ============================================================================
//                              能力位
// ============================================================================

// Caps 能力位集合
type Caps uint64

const (
	CapMsg         Caps = 1 << 1
	CapRMA         Caps = 1 << 2
	CapTagged      Caps = 1 << 3
	CapAtomic      Caps = 1 << 4
	CapRead        Caps = 1 << 8
	CapWrite       Caps = 1 << 9
	CapRecv        Caps = 1 << 10
	CapSend        Caps = 1 << 11
	CapRemoteRead  Caps = 1 << 12
	CapRemoteWrite Caps = 1 << 13
	CapMultiRecv   Caps = 1 << 16
	CapLocalComm   Caps = 1 << 36
)

// Has 检查是否包含全部指定能力
func (c Caps) Has(want Caps) bool {
	return c&want == want
}

// ============================================================================
//                              调用标志
// ============================================================================

// Flags 发现调用标志
type Flags uint64

// FlagSource 表示 node/service 描述的是本端（源）地址
const FlagSource Flags = 1 << 57

// Has 检查是否设置了指定标志
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// ============================================================================
//                              内存注册模式
// ============================================================================

// MRMode 内存注册模式位集合
type MRMode uint64

const (
	MRUnspec    MRMode = 0
	MRLocal     MRMode = 1 << 2
	MRRaw       MRMode = 1 << 3
	MRVirtAddr  MRMode = 1 << 4
	MRAllocated MRMode = 1 << 5
	MRProvKey   MRMode = 1 << 6
	MRMMUNotify MRMode = 1 << 7
	MRRMAEvent  MRMode = 1 << 8
	MREndpoint  MRMode = 1 << 9
	MRHMEM      MRMode = 1 << 10
)

var mrModeNames = []struct {
	bit  MRMode
	name string
}{
	{MRLocal, "local"},
	{MRRaw, "raw"},
	{MRVirtAddr, "virt_addr"},
	{MRAllocated, "allocated"},
	{MRProvKey, "prov_key"},
	{MRMMUNotify, "mmu_notify"},
	{MRRMAEvent, "rma_event"},
	{MREndpoint, "endpoint"},
	{MRHMEM, "hmem"},
}

// String 返回以 | 连接的模式名称
func (m MRMode) String() string {
	if m == MRUnspec {
		return "unspec"
	}
	var parts []string
	for _, n := range mrModeNames {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// ============================================================================
//                              消息顺序
// ============================================================================

// MsgOrder 消息顺序保证位集合
//
// 命名规则：前一个字母为后发操作，后一个字母为先发操作。
// 例如 RAW 表示 "读在写之后"（read after write）。
type MsgOrder uint64

const (
	OrderNone MsgOrder = 0
	OrderRAR  MsgOrder = 1 << 0
	OrderRAW  MsgOrder = 1 << 1
	OrderRAS  MsgOrder = 1 << 2
	OrderWAR  MsgOrder = 1 << 3
	OrderWAW  MsgOrder = 1 << 4
	OrderWAS  MsgOrder = 1 << 5
	OrderSAR  MsgOrder = 1 << 6
	OrderSAW  MsgOrder = 1 << 7
	OrderSAS  MsgOrder = 1 << 8
)

// OrderRMA 涉及 RMA 读写的全部顺序位（不含 SAS）
const OrderRMA = OrderRAR | OrderRAW | OrderRAS | OrderWAR | OrderWAW |
	OrderWAS | OrderSAR | OrderSAW

var orderNames = []string{"rar", "raw", "ras", "war", "waw", "was", "sar", "saw", "sas"}

// String 返回以 | 连接的顺序名称
func (o MsgOrder) String() string {
	if o == OrderNone {
		return "none"
	}
	var parts []string
	for i, name := range orderNames {
		if o&(1<<uint(i)) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// ============================================================================
//                              端点类型 / 地址格式
// ============================================================================

// EPType 端点类型
type EPType int

const (
	EPUnspec EPType = iota
	EPMsg
	EPDgram
	EPRDM
)

// String 返回端点类型名称
func (t EPType) String() string {
	switch t {
	case EPUnspec:
		return "unspec"
	case EPMsg:
		return "msg"
	case EPDgram:
		return "dgram"
	case EPRDM:
		return "rdm"
	default:
		return "unknown"
	}
}

// AddrFormat 地址格式
type AddrFormat int

const (
	AddrFormatUnspec AddrFormat = 0
	// AddrFormatStr 以字符串表示的地址（如 fi_shm://1234）
	AddrFormatStr AddrFormat = 9
)
