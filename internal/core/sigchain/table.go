package sigchain

import (
	"fmt"
	"sync/atomic"
)

// SignalTable 信号号到原处理器的固定大小映射
//
// 每个槽只能写入一次；读取不加锁，可在信号处理路径上使用。
type SignalTable struct {
	slots    []atomic.Pointer[Previous]
	released atomic.Bool
}

// NewSignalTable 创建大小为 size 的信号表
//
// size 通常为平台的第一个实时信号号，size <= 0 视为分配失败。
func NewSignalTable(size int) (*SignalTable, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrTableAlloc, size)
	}
	return &SignalTable{slots: make([]atomic.Pointer[Previous], size)}, nil
}

// Size 信号表大小
func (t *SignalTable) Size() int {
	return len(t.slots)
}

// InRange 信号号是否可存入信号表
func (t *SignalTable) InRange(sig int) bool {
	return sig > 0 && sig < len(t.slots)
}

// Store 记录 sig 的原处理器
func (t *SignalTable) Store(sig int, prev Previous) error {
	if t.released.Load() {
		return ErrTableReleased
	}
	if !t.InRange(sig) {
		return fmt.Errorf("%w: %d (size %d)", ErrSignalOutOfRange, sig, len(t.slots))
	}
	if !t.slots[sig].CompareAndSwap(nil, &prev) {
		return fmt.Errorf("%w: %d", ErrSlotTaken, sig)
	}
	return nil
}

// Load 读取 sig 的原处理器
func (t *SignalTable) Load(sig int) (Previous, bool) {
	if !t.InRange(sig) {
		return Previous{}, false
	}
	p := t.slots[sig].Load()
	if p == nil {
		return Previous{}, false
	}
	return *p, true
}

// Release 释放信号表，只有第一次调用返回 true
func (t *SignalTable) Release() bool {
	if t == nil {
		return false
	}
	return t.released.CompareAndSwap(false, true)
}

// Released 是否已释放
func (t *SignalTable) Released() bool {
	return t != nil && t.released.Load()
}
