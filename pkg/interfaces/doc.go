// Package interfaces 定义 go-shm 公共接口
//
// 这里的接口描述 provider 与外部协作者之间的边界：
//   - InfoBuilder:     通用传输描述构建器
//   - FastRMAPolicy:   快速 RMA 兼容性判定
//   - SharedCleaner:   共享内存资源清理
//   - SignalRegistrar: 宿主信号注册能力
//   - FabricOpener:    fabric 构造委托
//
// 默认实现位于 internal/core 下对应的包，宿主可以通过选项替换。
package interfaces
