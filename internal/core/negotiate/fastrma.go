package negotiate

import (
	"github.com/dep2p/go-shm/pkg/types"
)

// FastRMAEnabled 默认的快速 RMA 判定
//
// 要求虚拟地址注册，且不请求任何 RMA 相关的顺序保证。
func FastRMAEnabled(mode types.MRMode, order types.MsgOrder) bool {
	return mode&types.MRVirtAddr != 0 && order&types.OrderRMA == 0
}
