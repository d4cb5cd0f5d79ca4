package mocks

import (
	"sync/atomic"

	"github.com/dep2p/go-shm/pkg/interfaces"
)

// MockCleaner 模拟 SharedCleaner 接口实现
type MockCleaner struct {
	// CleanupErr Cleanup 返回的错误
	CleanupErr error

	cleanups   atomic.Int32
	signalSafe atomic.Int32
}

var _ interfaces.SharedCleaner = (*MockCleaner)(nil)

// Cleanup 记录正常路径清理
func (m *MockCleaner) Cleanup() error {
	m.cleanups.Add(1)
	return m.CleanupErr
}

// CleanupSignalSafe 记录信号路径清理
func (m *MockCleaner) CleanupSignalSafe() {
	m.signalSafe.Add(1)
}

// Cleanups 正常路径清理次数
func (m *MockCleaner) Cleanups() int {
	return int(m.cleanups.Load())
}

// SignalSafeCleanups 信号路径清理次数
func (m *MockCleaner) SignalSafeCleanups() int {
	return int(m.signalSafe.Load())
}
