// Package mocks 提供统一的测试 Mock 实现
//
// 每个 Mock 都带有可覆盖的函数字段和调用记录，未设置函数字段时使用合理默认值。
//
// # 构建器 Mock
//
//   - MockInfoBuilder: 模拟 interfaces.InfoBuilder
//
// # 信号 Mock
//
//   - MockSignalRegistrar: 模拟 interfaces.SignalRegistrar，支持手动投递信号
//
// # 清理 Mock
//
//   - MockCleaner: 模拟 interfaces.SharedCleaner
//
// # fabric Mock
//
//   - MockFabricOpener / MockFabric: 模拟 fabric 构造委托
package mocks
