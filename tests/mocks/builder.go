package mocks

import (
	"sync"

	"github.com/dep2p/go-shm/pkg/interfaces"
	"github.com/dep2p/go-shm/pkg/types"
)

// MockInfoBuilder 模拟 InfoBuilder 接口实现
type MockInfoBuilder struct {
	// 可覆盖的方法
	GetInfoFunc func(version types.Version, node, service string, flags types.Flags, hints *types.Info) ([]*types.Info, error)

	// 默认返回的候选（每次调用都返回副本）
	Infos []*types.Info

	// 调用记录
	mu    sync.Mutex
	Calls []GetInfoCall
}

var _ interfaces.InfoBuilder = (*MockInfoBuilder)(nil)

// GetInfoCall 记录 GetInfo 调用
type GetInfoCall struct {
	Version types.Version
	Node    string
	Service string
	Flags   types.Flags
	Hints   *types.Info
}

// NewMockInfoBuilder 创建返回给定候选的 MockInfoBuilder
func NewMockInfoBuilder(infos ...*types.Info) *MockInfoBuilder {
	return &MockInfoBuilder{Infos: infos}
}

// GetInfo 枚举候选
func (m *MockInfoBuilder) GetInfo(version types.Version, node, service string, flags types.Flags, hints *types.Info) ([]*types.Info, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, GetInfoCall{Version: version, Node: node, Service: service, Flags: flags, Hints: hints})
	m.mu.Unlock()

	if m.GetInfoFunc != nil {
		return m.GetInfoFunc(version, node, service, flags, hints)
	}
	out := make([]*types.Info, 0, len(m.Infos))
	for _, info := range m.Infos {
		out = append(out, info.Clone())
	}
	return out, nil
}

// CallCount 返回调用次数
func (m *MockInfoBuilder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
