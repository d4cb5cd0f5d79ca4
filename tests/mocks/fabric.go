package mocks

import (
	"github.com/dep2p/go-shm/pkg/interfaces"
	"github.com/dep2p/go-shm/pkg/types"
)

// MockFabric 模拟 Fabric
type MockFabric struct {
	NameValue string
	Closed    bool
}

// Name 返回 fabric 名称
func (f *MockFabric) Name() string {
	return f.NameValue
}

// Close 关闭 fabric
func (f *MockFabric) Close() error {
	f.Closed = true
	return nil
}

// MockFabricOpener 模拟 FabricOpener 接口实现
type MockFabricOpener struct {
	OpenFunc func(attr *types.FabricAttr) (interfaces.Fabric, error)

	// 调用记录
	Attrs []*types.FabricAttr
}

var _ interfaces.FabricOpener = (*MockFabricOpener)(nil)

// OpenFabric 打开 fabric
func (m *MockFabricOpener) OpenFabric(attr *types.FabricAttr) (interfaces.Fabric, error) {
	m.Attrs = append(m.Attrs, attr)
	if m.OpenFunc != nil {
		return m.OpenFunc(attr)
	}
	name := ""
	if attr != nil {
		name = attr.Name
	}
	return &MockFabric{NameValue: name}, nil
}
