// Package negotiate 实现能力协商（发现）
//
// Negotiator 把调用方请求的内存注册模式与消息顺序、探测到的 CMA 可用性
// 以及描述构建器枚举的候选描述结合起来，得出对外公布的传输属性：
//
//  1. 从提示中取请求的注册模式（默认虚拟地址）与消息顺序（默认无序）
//  2. 确保策略探测已运行
//  3. 计算 fastRMA = policy(mode, order)
//  4. 委托构建器枚举候选；失败原样返回
//  5. 对每个候选：补全地址；fastRMA 时强制严格默认值；
//     CMA 禁用时把最大消息大小限制为注入上限
//
// 第 5 步的修改不会失败，要么整体成功，要么返回第 4 步的错误。
//
// # 地址补全
//
// 未设置 FI_SOURCE 且候选缺目的地址时，目的地址由 (node, service) 解析；
// 候选缺源地址时，设置了 FI_SOURCE 则由 (node, service) 解析，
// 否则解析本进程身份地址。
package negotiate

import (
	"github.com/dep2p/go-shm/pkg/lib/log"
)

var logger = log.Logger("core/negotiate")
