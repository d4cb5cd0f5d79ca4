package fabricinfo

import (
	"math"

	"github.com/dep2p/go-shm/pkg/types"
)

// 基础描述常量
const (
	// ProviderName provider 名称
	ProviderName = "shm"

	// InjectSize 内联注入上限，CMA 禁用时也是最大消息大小
	InjectSize = 4096
)

var (
	// ProviderVersion provider 自身版本
	ProviderVersion = types.MakeVersion(1, 1)

	// APIVersion 支持的最高接口版本
	APIVersion = types.MakeVersion(1, 21)

	// MinVersion 支持的最低接口版本
	MinVersion = types.MakeVersion(1, 5)
)

// ProviderCaps provider 支持的能力
const ProviderCaps = types.CapMsg | types.CapTagged | types.CapRMA | types.CapAtomic |
	types.CapRead | types.CapWrite | types.CapRecv | types.CapSend |
	types.CapRemoteRead | types.CapRemoteWrite | types.CapMultiRecv |
	types.CapLocalComm

// ProviderOrder provider 支持的消息顺序
const ProviderOrder = types.OrderRMA | types.OrderSAS

// BaseInfo 返回 provider 的基础描述
func BaseInfo() *types.Info {
	return &types.Info{
		Caps:       ProviderCaps,
		AddrFormat: types.AddrFormatStr,
		FabricAttr: &types.FabricAttr{
			Name:        ProviderName,
			ProvName:    ProviderName,
			ProvVersion: ProviderVersion,
			APIVersion:  APIVersion,
		},
		DomainAttr: &types.DomainAttr{
			Name:   ProviderName,
			MRMode: types.MRVirtAddr,
		},
		TxAttr: &types.TxAttr{
			Caps:       ProviderCaps,
			MsgOrder:   ProviderOrder,
			InjectSize: InjectSize,
		},
		EPAttr: &types.EPAttr{
			Type:            types.EPRDM,
			MaxMsgSize:      math.MaxUint64,
			MaxOrderRAWSize: math.MaxUint64,
			MaxOrderWAWSize: math.MaxUint64,
			MaxOrderWARSize: math.MaxUint64,
		},
	}
}
