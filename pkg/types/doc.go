// Package types 定义 go-shm 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
//
// # 文件组织
//
//   - enums.go   - 能力位、内存注册模式、消息顺序、端点类型、地址格式
//   - version.go - 接口版本号编码
//   - info.go    - Info 传输描述及其属性
//
// 位值与宿主 fabric 接口保持一致，调用方可以直接透传。
package types
