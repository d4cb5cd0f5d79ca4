package mocks

import (
	"os"
	"sync"

	"github.com/dep2p/go-shm/pkg/interfaces"
)

// MockSignalRegistrar 模拟 SignalRegistrar 接口实现
//
// 不触碰真实的进程信号处置，Deliver 手动向已注册的通道投递信号。
type MockSignalRegistrar struct {
	// BaseValue 信号表大小
	BaseValue int

	// IgnoredSignals 视为已忽略的信号
	IgnoredSignals map[os.Signal]bool

	// RaiseFunc 可覆盖 Raise 行为
	RaiseFunc func(sig os.Signal) error

	mu       sync.Mutex
	channels map[os.Signal][]chan<- os.Signal
	resets   []os.Signal
	ignores  []os.Signal
	raised   []os.Signal
	stopped  int
}

var _ interfaces.SignalRegistrar = (*MockSignalRegistrar)(nil)

// NewMockSignalRegistrar 创建 MockSignalRegistrar
func NewMockSignalRegistrar(base int) *MockSignalRegistrar {
	return &MockSignalRegistrar{
		BaseValue:      base,
		IgnoredSignals: make(map[os.Signal]bool),
		channels:       make(map[os.Signal][]chan<- os.Signal),
	}
}

// Base 信号表大小
func (m *MockSignalRegistrar) Base() int {
	return m.BaseValue
}

// Ignored 信号是否被忽略
func (m *MockSignalRegistrar) Ignored(sig os.Signal) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.IgnoredSignals[sig]
}

// Notify 注册通道
func (m *MockSignalRegistrar) Notify(c chan<- os.Signal, sigs ...os.Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sig := range sigs {
		m.channels[sig] = append(m.channels[sig], c)
	}
}

// Stop 注销通道
func (m *MockSignalRegistrar) Stop(c chan<- os.Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for sig, chans := range m.channels {
		kept := chans[:0]
		for _, ch := range chans {
			if ch != c {
				kept = append(kept, ch)
			}
		}
		m.channels[sig] = kept
	}
	m.stopped++
}

// Reset 记录恢复默认处置
func (m *MockSignalRegistrar) Reset(sigs ...os.Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, sigs...)
}

// Ignore 记录忽略
func (m *MockSignalRegistrar) Ignore(sigs ...os.Signal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ignores = append(m.ignores, sigs...)
}

// Raise 记录重新投递
func (m *MockSignalRegistrar) Raise(sig os.Signal) error {
	m.mu.Lock()
	m.raised = append(m.raised, sig)
	fn := m.RaiseFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(sig)
	}
	return nil
}

// Deliver 向注册了 sig 的通道投递信号，返回投递的通道数
func (m *MockSignalRegistrar) Deliver(sig os.Signal) int {
	m.mu.Lock()
	chans := append([]chan<- os.Signal(nil), m.channels[sig]...)
	m.mu.Unlock()

	for _, c := range chans {
		c <- sig
	}
	return len(chans)
}

// Registered 返回注册了通道的信号数
func (m *MockSignalRegistrar) Registered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, chans := range m.channels {
		if len(chans) > 0 {
			n++
		}
	}
	return n
}

// Resets 返回 Reset 记录
func (m *MockSignalRegistrar) Resets() []os.Signal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]os.Signal(nil), m.resets...)
}

// Ignores 返回 Ignore 记录
func (m *MockSignalRegistrar) Ignores() []os.Signal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]os.Signal(nil), m.ignores...)
}

// Raised 返回 Raise 记录
func (m *MockSignalRegistrar) Raised() []os.Signal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]os.Signal(nil), m.raised...)
}

// StopCount 返回 Stop 调用次数
func (m *MockSignalRegistrar) StopCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}
